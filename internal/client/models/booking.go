package models

// BookingStatus is assigned by the service.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking mirrors the service's booking DTO. The QR payload and the
// human-readable reference are both issued by the service.
type Booking struct {
	ID               int64         `json:"id"`
	User             *User         `json:"user,omitempty"`
	Event            *Event        `json:"event,omitempty"`
	TicketsBooked    int           `json:"ticketsBooked"`
	TotalAmount      float64       `json:"totalAmount"`
	QRCode           string        `json:"qrCode,omitempty"`
	BookingDate      string        `json:"bookingDate"`
	Status           BookingStatus `json:"status"`
	BookingReference string        `json:"bookingReference"`
}

// BookingRequest is the payload for creating a booking. Total amount and
// ticket availability are resolved by the service.
type BookingRequest struct {
	UserID           int64 `json:"userId"`
	EventID          int64 `json:"eventId"`
	TicketsRequested int   `json:"ticketsRequested"`
}

// QRImage is the response of the qr-image endpoint: a base64 PNG plus the
// booking reference printed beneath it.
type QRImage struct {
	QRCodeImage      string `json:"qrCodeImage"`
	BookingReference string `json:"bookingReference"`
}

// QRVerification is the service's verdict on a scanned payload. Booking is
// populated only when the payload was valid.
type QRVerification struct {
	Valid   bool     `json:"valid"`
	Booking *Booking `json:"booking,omitempty"`
	Message string   `json:"message,omitempty"`
}
