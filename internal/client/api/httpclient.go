package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aka-Harsh/eventbook/internal/client/models"
)

// idempotencyHeader carries a client-generated key on booking creation so
// the service may drop duplicates from double-submitted forms. Whether it
// does is up to the service; the client offers the key unconditionally.
const idempotencyHeader = "Idempotency-Key"

// HTTPClient is the concrete Client speaking the service's JSON contract.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the service rooted at baseURL
// (e.g. "https://localhost:8080/api"). A zero timeout means no timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// envelope is the service's success/failure wrapper used by account
// endpoints and by rejection bodies everywhere else.
type envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// do performs one request/response exchange. Transport and decode failures
// wrap ErrUnavailable; non-2xx statuses become a *RequestError carrying the
// service's message when one was sent. When out is non-nil the response
// body is decoded into it.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, hdr http.Header) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrUnavailable, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		_ = json.Unmarshal(data, &env)
		return &RequestError{Status: resp.StatusCode, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

// Authenticate posts credentials and returns the identity on success. A
// {success:false} answer, with any status, becomes a *RequestError whose
// Message is the service's own text.
func (c *HTTPClient) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	in := map[string]string{"email": email, "password": password}
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/users/login", in, &env, nil); err != nil {
		return nil, err
	}
	if !env.Success || env.User == nil {
		return nil, &RequestError{Status: http.StatusOK, Message: env.Message}
	}
	return env.User, nil
}

// Register creates a new account. It does not log the user in.
func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/users/register", req, &env, nil); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &RequestError{Status: http.StatusOK, Message: env.Message}
	}
	return env.User, nil
}

func (c *HTTPClient) ListEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) EventsByType(ctx context.Context, eventType string) ([]models.Event, error) {
	var out []models.Event
	path := "/events/type/" + url.PathEscape(eventType)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	var out []models.Event
	path := "/events/search?query=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Recommendations(ctx context.Context, eventID int64) ([]models.Event, error) {
	var out []models.Event
	path := fmt.Sprintf("/events/%d/recommendations", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, req models.EventRequest) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, "/events", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, id int64, req models.EventRequest) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil, nil)
}

func (c *HTTPClient) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	hdr := http.Header{idempotencyHeader: []string{uuid.NewString()}}
	var out models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &out, hdr); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UserBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	var out []models.Booking
	path := fmt.Sprintf("/bookings/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CancelBooking(ctx context.Context, id int64) (*models.Booking, error) {
	var out models.Booking
	path := fmt.Sprintf("/bookings/%d/cancel", id)
	if err := c.do(ctx, http.MethodPut, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) BookingQR(ctx context.Context, id int64) (*models.QRImage, error) {
	var out models.QRImage
	path := fmt.Sprintf("/bookings/%d/qr-image", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) VerifyQR(ctx context.Context, payload string) (*models.QRVerification, error) {
	in := map[string]string{"qrCode": payload}
	var out models.QRVerification
	if err := c.do(ctx, http.MethodPost, "/bookings/verify-qr", in, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) BookingByReference(ctx context.Context, ref string) (*models.Booking, error) {
	var out models.Booking
	path := "/bookings/reference/" + url.PathEscape(ref)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	var out models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListReviews(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	if err := c.do(ctx, http.MethodGet, "/reviews", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) EventReviews(ctx context.Context, eventID int64) ([]models.Review, error) {
	var out []models.Review
	path := fmt.Sprintf("/reviews/event/%d", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ReviewSummary(ctx context.Context, eventID int64) (*models.ReviewSummary, error) {
	var out models.ReviewSummary
	path := fmt.Sprintf("/reviews/event/%d/summary", eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UserReviews(ctx context.Context, userID int64) ([]models.Review, error) {
	var out []models.Review
	path := fmt.Sprintf("/reviews/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var out models.Dashboard
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Revenue(ctx context.Context) (models.Revenue, error) {
	var out models.Revenue
	if err := c.do(ctx, http.MethodGet, "/admin/revenue", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}
