package models

// Dashboard is the admin aggregate. The stat groups are open-ended maps on
// the wire; the service adds keys without versioning, so they are kept
// untyped and rendered generically.
type Dashboard struct {
	UserStats      map[string]any `json:"userStats"`
	EventStats     map[string]any `json:"eventStats"`
	BookingStats   map[string]any `json:"bookingStats"`
	ReviewStats    map[string]any `json:"reviewStats"`
	RecentBookings []Booking      `json:"recentBookings"`
	RecentReviews  []Review       `json:"recentReviews"`
}

// Revenue is the revenue analytics aggregate, same open-ended shape.
type Revenue map[string]any
