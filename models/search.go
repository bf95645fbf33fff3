package models

// SearchHit is one row in a cross-entity search response.
type SearchHit struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	URL      string `json:"url"`
}

// SearchResults groups hits by entity for the global search endpoint.
type SearchResults struct {
	Rooms    []SearchHit `json:"rooms"`
	Guests   []SearchHit `json:"guests"`
	Bookings []SearchHit `json:"bookings"`
}

// BookingSearchRow is an aggregation row joining a booking with its room
// number and guest name.
type BookingSearchRow struct {
	ID         string `bson:"id"`
	RoomNumber string `bson:"roomNumber"`
	GuestName  string `bson:"guestName"`
}
