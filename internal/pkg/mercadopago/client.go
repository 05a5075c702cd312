package mercadopago

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// ProviderError carries the provider's own error envelope so handlers can
// surface the first reported cause description to the caller.
type ProviderError struct {
	StatusCode  int
	Message     string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("mercadopago: %s", e.Description)
	}
	return fmt.Sprintf("mercadopago: %s", e.Message)
}

// errorEnvelope is the provider's error response body
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Cause   []struct {
		Code        json.Number `json:"code"`
		Description string      `json:"description"`
	} `json:"cause"`
}

// PreferencePayload is the provider-facing checkout preference body
type PreferencePayload struct {
	Items               []models.PreferenceItem `json:"items"`
	Payer               models.PreferencePayer  `json:"payer"`
	BackURLs            BackURLs                `json:"back_urls"`
	AutoReturn          string                  `json:"auto_return,omitempty"`
	NotificationURL     string                  `json:"notification_url"`
	ExternalReference   string                  `json:"external_reference"`
	StatementDescriptor string                  `json:"statement_descriptor,omitempty"`
	Expires             bool                    `json:"expires"`
	ExpirationDateFrom  string                  `json:"expiration_date_from,omitempty"`
	ExpirationDateTo    string                  `json:"expiration_date_to,omitempty"`
	PaymentMethods      *PaymentMethods         `json:"payment_methods,omitempty"`
	Metadata            models.JSONMap          `json:"metadata,omitempty"`
}

// BackURLs uses the provider's snake_case wire naming
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PaymentMethods carries the installment cap and any excluded types
type PaymentMethods struct {
	Installments         int            `json:"installments,omitempty"`
	ExcludedPaymentTypes []excludedType `json:"excluded_payment_types,omitempty"`
}

type excludedType struct {
	ID string `json:"id"`
}

// ExcludePaymentTypes builds the provider's excluded_payment_types list
func ExcludePaymentTypes(ids ...string) []excludedType {
	out := make([]excludedType, 0, len(ids))
	for _, id := range ids {
		out = append(out, excludedType{ID: id})
	}
	return out
}

// PreferenceResult is the provider's answer to a preference creation
type PreferenceResult struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// ChargePayload is a direct card-token charge body for /v1/payments
type ChargePayload struct {
	Token             string         `json:"token"`
	TransactionAmount float64        `json:"transaction_amount"`
	Installments      int            `json:"installments"`
	Description       string         `json:"description,omitempty"`
	ExternalReference string         `json:"external_reference"`
	Payer             ChargePayer    `json:"payer"`
	Metadata          models.JSONMap `json:"metadata,omitempty"`
}

// ChargePayer identifies the card holder towards the provider
type ChargePayer struct {
	Email string `json:"email"`
}

// paymentResponse is the provider's payment resource
type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	StatusDetail      string      `json:"status_detail"`
	ExternalReference string      `json:"external_reference"`
	TransactionAmount float64     `json:"transaction_amount"`
	CurrencyID        string      `json:"currency_id"`
	DateApproved      string      `json:"date_approved"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

// Client talks to the MercadoPago REST API. All calls run through a circuit
// breaker so a degraded provider cannot pile up goroutines behind slow
// requests.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
	cfg     models.MercadoPagoConfig
}

// NewClient creates a new MercadoPago API client
func NewClient(cfg models.MercadoPagoConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "mercadopago",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				logger.String("circuit", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})

	return &Client{
		http:    httpClient,
		breaker: breaker,
		cfg:     cfg,
	}
}

// CreatePreference creates a checkout preference and returns the hosted
// payment page URLs
func (c *Client) CreatePreference(ctx context.Context, payload *PreferencePayload) (*PreferenceResult, error) {
	var result PreferenceResult
	err := c.do(ctx, func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetBody(payload).
			SetResult(&result).
			Post("/checkout/preferences")
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPayment fetches the authoritative payment state by provider id
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*models.PaymentDetails, error) {
	var resp paymentResponse
	err := c.do(ctx, func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetResult(&resp).
			Get("/v1/payments/" + paymentID)
	})
	if err != nil {
		return nil, err
	}
	return resp.toDetails(), nil
}

// CreatePayment performs a direct charge against a pre-tokenized card
func (c *Client) CreatePayment(ctx context.Context, payload *ChargePayload) (*models.PaymentDetails, error) {
	var resp paymentResponse
	err := c.do(ctx, func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetBody(payload).
			SetResult(&resp).
			Post("/v1/payments")
	})
	if err != nil {
		return nil, err
	}
	return resp.toDetails(), nil
}

// do runs a request through the circuit breaker and maps non-2xx responses
// to ProviderError
func (c *Client) do(ctx context.Context, fn func() (*resty.Response, error)) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := fn()
		if err != nil {
			return nil, fmt.Errorf("mercadopago request failed: %w", err)
		}
		if resp.IsError() {
			return nil, parseProviderError(resp)
		}
		return resp, nil
	})
	return err
}

func parseProviderError(resp *resty.Response) error {
	provErr := &ProviderError{StatusCode: resp.StatusCode()}

	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil {
		provErr.Message = envelope.Message
		if len(envelope.Cause) > 0 {
			provErr.Description = envelope.Cause[0].Description
		}
	}
	if provErr.Message == "" && provErr.Description == "" {
		provErr.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode())
	}

	return provErr
}

func (r *paymentResponse) toDetails() *models.PaymentDetails {
	return &models.PaymentDetails{
		ID:                r.ID.String(),
		Status:            r.Status,
		StatusDetail:      r.StatusDetail,
		ExternalReference: r.ExternalReference,
		TransactionAmount: r.TransactionAmount,
		CurrencyID:        r.CurrencyID,
		PayerEmail:        r.Payer.Email,
		DateApproved:      r.DateApproved,
	}
}
