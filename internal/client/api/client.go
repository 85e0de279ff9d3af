// Package api implements the JSON-over-HTTPS client for the booking
// service. The service owns all business logic (pricing, inventory, QR
// issuance, persistence); this package only shapes requests, decodes
// responses, and normalizes failures.
package api

import (
	"context"

	"github.com/aka-Harsh/eventbook/internal/client/models"
)

// Client is the full request surface the terminal views consume. It is an
// interface so services and views can be exercised against fakes.
type Client interface {
	// Accounts.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)

	// Events.
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	EventsByType(ctx context.Context, eventType string) ([]models.Event, error)
	SearchEvents(ctx context.Context, query string) ([]models.Event, error)
	Recommendations(ctx context.Context, eventID int64) ([]models.Event, error)
	CreateEvent(ctx context.Context, req models.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req models.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	// Bookings.
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UserBookings(ctx context.Context, userID int64) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*models.Booking, error)
	BookingQR(ctx context.Context, id int64) (*models.QRImage, error)
	VerifyQR(ctx context.Context, payload string) (*models.QRVerification, error)
	BookingByReference(ctx context.Context, ref string) (*models.Booking, error)

	// Reviews.
	CreateReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
	EventReviews(ctx context.Context, eventID int64) ([]models.Review, error)
	ReviewSummary(ctx context.Context, eventID int64) (*models.ReviewSummary, error)
	UserReviews(ctx context.Context, userID int64) ([]models.Review, error)

	// Admin.
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	Revenue(ctx context.Context) (models.Revenue, error)
}
