package models

// Event mirrors the service's event DTO. Prices and sold percentages are
// computed server-side; the client only displays them.
type Event struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Type             string  `json:"type"`
	Tags             string  `json:"tags"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Location         string  `json:"location"`
	TotalTickets     int     `json:"totalTickets"`
	TicketsSold      int     `json:"ticketsSold"`
	BasePrice        float64 `json:"basePrice"`
	CurrentPrice     float64 `json:"currentPrice"`
	AvailableTickets int     `json:"availableTickets"`
	SoldPercentage   float64 `json:"soldPercentage"`
	EventImage       string  `json:"eventImage,omitempty"`
}

// EventRequest is the payload for creating or updating an event (admin).
type EventRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Tags         string  `json:"tags"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Location     string  `json:"location"`
	TotalTickets int     `json:"totalTickets"`
	BasePrice    float64 `json:"basePrice"`
}
