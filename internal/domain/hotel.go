package domain

// Hotel is one bookable property from the feed, enriched at ingestion time.
// DistanceToCenter is always derived from the coordinates and the matching
// city's center; a feed-supplied value is discarded.
type Hotel struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Location   Location   `json:"location"`
	Stars      float64    `json:"stars"`
	CheckIn    TimeWindow `json:"checkIn"`
	CheckOut   TimeWindow `json:"checkOut"`
	Contact    Contact    `json:"contact"`
	Gallery    []string   `json:"gallery"`
	UserRating float64    `json:"userRating"` // 0..10
	Price      float64    `json:"price"`      // nightly, non-negative
	Currency   string     `json:"currency"`   // ISO 4217-like code

	DistanceToCenter float64 `json:"distanceToCenter"` // km, derived
}

type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type TimeWindow struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Contact struct {
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}
