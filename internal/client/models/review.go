package models

// Review mirrors the service's review DTO.
type Review struct {
	ID         int64  `json:"id"`
	User       *User  `json:"user,omitempty"`
	Event      *Event `json:"event,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	ReviewDate string `json:"reviewDate"`
}

// ReviewRequest is the payload for creating a review. Rating must be 1..5;
// the client validates before sending.
type ReviewRequest struct {
	UserID  int64  `json:"userId"`
	EventID int64  `json:"eventId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewSummary is the per-event aggregate returned by the summary endpoint.
type ReviewSummary struct {
	EventID       int64          `json:"eventId"`
	AverageRating float64        `json:"averageRating"`
	TotalReviews  int            `json:"totalReviews"`
	Distribution  map[string]int `json:"ratingDistribution,omitempty"`
}
