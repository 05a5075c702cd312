package usecase

import (
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
)

// PaymentUC implements the payments.PaymentUC interface
type PaymentUC struct {
	cfg      *models.Config
	repo     payments.PaymentRepo
	provider payments.ProviderGW
	events   payments.EventsGW
	profiles payments.ProfileGW
	bookings payments.BookingGW
	cache    payments.DedupCache
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	provider payments.ProviderGW,
	events payments.EventsGW,
	profiles payments.ProfileGW,
	bookings payments.BookingGW,
	cache payments.DedupCache,
) payments.PaymentUC {
	return &PaymentUC{
		cfg:      cfg,
		repo:     repo,
		provider: provider,
		events:   events,
		profiles: profiles,
		bookings: bookings,
		cache:    cache,
	}
}
