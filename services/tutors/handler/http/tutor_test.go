package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/tutors"
	"github.com/tutorcito/tutorcito/services/tutors/mocks"
)

func TestSearchTutors_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTutorUC(ctrl)
	handler := NewTutorHandler(mockUC)

	subjectID := uuid.New()
	mockUC.EXPECT().SearchTutors(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter models.TutorFilter) ([]models.Tutor, error) {
			assert.NotNil(t, filter.SubjectID)
			assert.Equal(t, subjectID, *filter.SubjectID)
			assert.Equal(t, 10, filter.Limit)
			return []models.Tutor{{ID: uuid.New(), FullName: "Ana García", Sponsored: true}}, nil
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutors?subject_id="+subjectID.String()+"&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SearchTutors(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana García")
}

func TestSearchTutors_Handler_InvalidSubjectID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTutorHandler(mocks.NewMockTutorUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tutors?subject_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SearchTutors(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPricing_Handler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTutorUC(ctrl)
	handler := NewTutorHandler(mockUC)

	tutorID := uuid.New()
	mockUC.EXPECT().GetPricing(gomock.Any(), tutorID).Return(nil, tutors.ErrTutorNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tutorID")
	c.SetParamValues(tutorID.String())

	err := handler.GetPricing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReplacePricing_Handler_ForbiddenForOtherTutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTutorHandler(mocks.NewMockTutorUC(ctrl))

	e := echo.New()
	body := `[{"duration_minutes":60,"price":"5000"}]`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tutorID")
	c.SetParamValues(uuid.New().String())
	c.Set("user_id", uuid.New())

	err := handler.ReplacePricing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReplacePricing_Handler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTutorUC(ctrl)
	handler := NewTutorHandler(mockUC)

	tutorID := uuid.New()
	mockUC.EXPECT().ReplacePricing(gomock.Any(), tutorID, gomock.Any()).
		Return([]models.TutorPricing{
			{TutorID: tutorID, DurationMinutes: 60, PriceCents: 500000, Currency: "ARS"},
		}, nil)

	e := echo.New()
	body := `[{"duration_minutes":60,"price":"5000"}]`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tutorID")
	c.SetParamValues(tutorID.String())
	c.Set("user_id", tutorID)

	err := handler.ReplacePricing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}
