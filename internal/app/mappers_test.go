package app

import (
	"encoding/json"
	"testing"
)

func TestMapHotel_CanonicalFeedShape(t *testing.T) {
	raw := map[string]any{}
	if err := json.Unmarshal([]byte(`{
		"id": 43599,
		"name": "Hotel Sunny Palms",
		"location": {
			"address": "Piazza Castello 1",
			"city": "Rome",
			"latitude": 41.8986,
			"longitude": 12.4768
		},
		"stars": 4.5,
		"checkIn": {"from": "14:00", "to": "20:00"},
		"checkOut": {"from": "07:00", "to": "10:00"},
		"contact": {"phoneNumber": "+39 012 345 6789", "email": "sunny@palms.com"},
		"gallery": ["https://img.example/1.jpg", "https://img.example/2.jpg"],
		"userRating": 8.6,
		"price": 108.0,
		"currency": "EUR",
		"distanceToCenter": 999
	}`), &raw); err != nil {
		t.Fatal(err)
	}

	h := mapHotel(raw)
	if h.ID != 43599 || h.Name != "Hotel Sunny Palms" {
		t.Fatalf("identity: %+v", h)
	}
	if h.Location.City != "Rome" || h.Location.Address != "Piazza Castello 1" {
		t.Fatalf("location: %+v", h.Location)
	}
	if h.Location.Latitude != 41.8986 || h.Location.Longitude != 12.4768 {
		t.Fatalf("coords: %+v", h.Location)
	}
	if h.Stars != 4.5 || h.UserRating != 8.6 || h.Price != 108 || h.Currency != "EUR" {
		t.Fatalf("numbers: %+v", h)
	}
	if h.CheckIn.From != "14:00" || h.CheckOut.To != "10:00" {
		t.Fatalf("windows: %+v %+v", h.CheckIn, h.CheckOut)
	}
	if h.Contact.Email != "sunny@palms.com" {
		t.Fatalf("contact: %+v", h.Contact)
	}
	if len(h.Gallery) != 2 {
		t.Fatalf("gallery: %v", h.Gallery)
	}
	// feed-supplied distance is untrusted and must be discarded
	if h.DistanceToCenter != 0 {
		t.Fatalf("distanceToCenter must come from enrichment, got %v", h.DistanceToCenter)
	}
}

func TestMapHotel_AliasAndCoercionTolerance(t *testing.T) {
	h := mapHotel(map[string]any{
		"hotel_id":    "77",
		"hotel_name":  "Pension Alias",
		"city":        "Berlin",
		"lat":         "52,53",
		"lng":         13.4,
		"star_rating": 3,
		"user_rating": "7.2",
		"rate":        "85",
		"currency":    "eur",
		"photos":      []any{map[string]any{"url": "https://img.example/p.jpg"}, "plain.jpg"},
	})
	if h.ID != 77 || h.Name != "Pension Alias" || h.Location.City != "Berlin" {
		t.Fatalf("aliases: %+v", h)
	}
	if h.Location.Latitude != 52.53 || h.Location.Longitude != 13.4 {
		t.Fatalf("coercion: %+v", h.Location)
	}
	if h.Stars != 3 || h.UserRating != 7.2 || h.Price != 85 {
		t.Fatalf("numbers: %+v", h)
	}
	if h.Currency != "EUR" {
		t.Fatalf("currency should be uppercased: %q", h.Currency)
	}
	if len(h.Gallery) != 2 || h.Gallery[0] != "https://img.example/p.jpg" {
		t.Fatalf("gallery: %v", h.Gallery)
	}
}

func TestMapHotels_EmptyInput(t *testing.T) {
	if got := mapHotels(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}
