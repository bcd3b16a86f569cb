package shared

import (
	"strings"

	"stayfinder/internal/domain"
)

// CityCenters is the reference table consulted during enrichment. A city
// missing from this table yields a distance-to-center of 0, not an error.
var CityCenters = map[string]domain.Coords{
	"London": {Latitude: 51.5074, Longitude: -0.1278},
	"Paris":  {Latitude: 48.8566, Longitude: 2.3522},
	"Rome":   {Latitude: 41.9028, Longitude: 12.4964},
	"Madrid": {Latitude: 40.4168, Longitude: -3.7038},
	"Berlin": {Latitude: 52.52, Longitude: 13.405},
}

func img(id string) string {
	return "https://images.unsplash.com/" + id + "?auto=format&fit=crop&w=800&q=80"
}

// Cities is the bundled destination reference data shown on the browse
// surface. Static, never fetched.
var Cities = []domain.City{
	{
		ID:      1,
		Name:    "Paris",
		Country: "France",
		Image:   img("photo-1502602898657-3e91760cbb34"),
		Center:  domain.Coords{Latitude: 48.8566, Longitude: 2.3522},
		Foods: []domain.NamedItem{
			{ID: 1, Name: "Cheese Platter", Image: img("photo-1627935722051-395636b0d8a5")},
			{ID: 2, Name: "Fresh Baguette", Image: img("photo-1599819055803-717bba43890f")},
			{ID: 3, Name: "Crepes", Image: img("photo-1515467837915-15c4777ba46a")},
		},
		Activities: []domain.NamedItem{
			{ID: 1, Name: "Eiffel Tower Visit", Image: img("photo-1609087361918-cc99d6f604ac")},
			{ID: 2, Name: "Louvre Museum Tour", Image: img("photo-1567942585146-33d62b775db0")},
			{ID: 3, Name: "Seine River Cruise", Image: img("photo-1567187155374-cd9135b1f247")},
		},
	},
	{
		ID:      2,
		Name:    "London",
		Country: "UK",
		Image:   img("photo-1505761671935-60b3a7427bad"),
		Center:  domain.Coords{Latitude: 51.5074, Longitude: -0.1278},
		Foods: []domain.NamedItem{
			{ID: 1, Name: "Fish & Chips", Image: img("photo-1706711053549-f52f73a8960c")},
			{ID: 2, Name: "English Breakfast", Image: img("photo-1655979283362-535e6a167a53")},
			{ID: 3, Name: "Afternoon Tea", Image: img("photo-1497800640957-3100979af57c")},
		},
		Activities: []domain.NamedItem{
			{ID: 1, Name: "Big Ben Visit", Image: img("photo-1486299267070-83823f5448dd")},
			{ID: 2, Name: "London Eye Ride", Image: img("photo-1510270165035-113679af1ac9")},
			{ID: 3, Name: "British Museum Visit", Image: img("photo-1519056312994-33952f238fac")},
		},
	},
	{
		ID:      3,
		Name:    "Tokyo",
		Country: "Japan",
		Image:   img("photo-1549693578-d683be217e58"),
		Center:  domain.Coords{Latitude: 35.6895, Longitude: 139.6917},
		Foods: []domain.NamedItem{
			{ID: 1, Name: "Sushi", Image: img("photo-1553621042-f6e147245754")},
			{ID: 2, Name: "Ramen", Image: img("photo-1720873915320-84103511b1fb")},
			{ID: 3, Name: "Tempura", Image: img("photo-1593357849627-cbbc9fda6b05")},
		},
		Activities: []domain.NamedItem{
			{ID: 1, Name: "Shinjuku Garden", Image: img("photo-1722591758897-8a59409aeda2")},
			{ID: 2, Name: "Tokyo Tower Night View", Image: img("photo-1716564100974-b3ad6b53290f")},
			{ID: 3, Name: "Tsukiji Market Visit", Image: img("photo-1665846642221-fdb1a793c7f5")},
		},
	},
	{
		ID:      4,
		Name:    "New York",
		Country: "USA",
		Image:   img("photo-1496442226666-8d4d0e62e6e9"),
		Center:  domain.Coords{Latitude: 40.7128, Longitude: -74.006},
		Foods: []domain.NamedItem{
			{ID: 1, Name: "New York Pizza", Image: img("photo-1560202212-441ad59100fd")},
			{ID: 2, Name: "Bagel with Salmon", Image: img("photo-1734809569547-7c9ef0973222")},
			{ID: 3, Name: "Street Hot Dog", Image: img("photo-1577008507686-7418c4e06774")},
		},
		Activities: []domain.NamedItem{
			{ID: 1, Name: "Central Park Walk", Image: img("photo-1623593419606-7f9c8c22d736")},
			{ID: 2, Name: "Statue of Liberty Visit", Image: img("photo-1569421899560-a1ae0dc07897")},
			{ID: 3, Name: "Times Square Night", Image: img("photo-1706752208267-86a9d2573626")},
		},
	},
}

// CityByName does a case-insensitive lookup in Cities.
func CityByName(name string) (domain.City, bool) {
	for _, c := range Cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return domain.City{}, false
}

// CenterFor resolves a hotel's city to its enrichment center coordinate.
func CenterFor(city string) (domain.Coords, bool) {
	if c, ok := CityCenters[city]; ok {
		return c, true
	}
	for name, c := range CityCenters {
		if strings.EqualFold(name, city) {
			return c, true
		}
	}
	return domain.Coords{}, false
}
