package domain

// City is static reference data bundled with the service, never fetched.
type City struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Country    string      `json:"country"`
	Image      string      `json:"image"`
	Center     Coords      `json:"center"`
	Foods      []NamedItem `json:"foods"`
	Activities []NamedItem `json:"activities"`
}

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type NamedItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
