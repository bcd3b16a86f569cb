package app

import (
	"strconv"
	"strings"

	"stayfinder/internal/domain"
)

/********** alias registry (single source of truth) **********/

// The feed is mostly well-behaved, but field spellings have drifted across
// feed revisions; tolerate the known variants.
var hotelAliases = map[string][]string{
	"name":      {"name", "hotel_name", "hotelName", "title"},
	"address":   {"location.address", "address", "address.line", "street"},
	"city":      {"location.city", "city", "locality", "town"},
	"latitude":  {"location.latitude", "latitude", "lat", "location.lat"},
	"longitude": {"location.longitude", "longitude", "lon", "lng", "location.lon", "location.lng"},
	"stars":     {"stars", "starRating", "star_rating", "rating.stars"},
	"rating":    {"userRating", "user_rating", "rating.value", "guestRating"},
	"price":     {"price", "nightlyPrice", "price.amount", "rate"},
	"currency":  {"currency", "currencyCode", "currency_code", "price.currency"},
	"phone":     {"contact.phoneNumber", "contact.phone", "phoneNumber", "phone"},
	"email":     {"contact.email", "email"},
	"gallery":   {"gallery", "images", "photos"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstStr: first non-empty string for a named alias set.
func firstStr(m map[string]any, key string) string {
	for _, p := range hotelAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// firstFloat: number from the alias set (float64/int/string like "8,0").
func firstFloat(m map[string]any, key string) float64 {
	for _, k := range hotelAliases[key] {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func firstInt64(m map[string]any, paths ...string) int64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return int64(v)
		case int:
			return int64(v)
		case int64:
			return v
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

// firstStrings: accept []any holding either strings or {url/src} objects.
func firstStrings(m map[string]any, key string) []string {
	for _, k := range hotelAliases[key] {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if u, ok := t["url"].(string); ok && u != "" {
					out = append(out, u)
					continue
				}
				if u, ok := t["src"].(string); ok && u != "" {
					out = append(out, u)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func timeWindow(m map[string]any, base string) domain.TimeWindow {
	return domain.TimeWindow{
		From: lookupStr(m, base+".from"),
		To:   lookupStr(m, base+".to"),
	}
}

/********** hotel mapper **********/

// mapHotel converts one raw feed object into a domain.Hotel.
// DistanceToCenter is left zero on purpose: the feed value is untrusted
// and the enrichment step recomputes it from the coordinates.
func mapHotel(p map[string]any) domain.Hotel {
	return domain.Hotel{
		ID:   firstInt64(p, "id", "hotel_id", "hotelId"),
		Name: firstStr(p, "name"),
		Location: domain.Location{
			Address:   firstStr(p, "address"),
			City:      firstStr(p, "city"),
			Latitude:  firstFloat(p, "latitude"),
			Longitude: firstFloat(p, "longitude"),
		},
		Stars:    firstFloat(p, "stars"),
		CheckIn:  timeWindow(p, "checkIn"),
		CheckOut: timeWindow(p, "checkOut"),
		Contact: domain.Contact{
			PhoneNumber: firstStr(p, "phone"),
			Email:       firstStr(p, "email"),
		},
		Gallery:    firstStrings(p, "gallery"),
		UserRating: firstFloat(p, "rating"),
		Price:      firstFloat(p, "price"),
		Currency:   strings.ToUpper(firstStr(p, "currency")),
	}
}

func mapHotels(in []map[string]any) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(in))
	for _, p := range in {
		out = append(out, mapHotel(p))
	}
	return out
}
