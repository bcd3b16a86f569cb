package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"stayfinder/internal/app"
	"stayfinder/internal/domain"
	"stayfinder/internal/pricing"
)

type Handlers struct {
	Q *app.QueryService
	R *app.RefreshService
	F *pricing.Formatter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// hotelResponse adds the render-time display price; the stored price is
// untouched.
type hotelResponse struct {
	domain.Hotel
	DisplayPrice string `json:"displayPrice"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/cities", h.listCities)
	s.mux.Get("/v1/cities/{name}", h.getCity)
	s.mux.Get("/v1/cities/{name}/hotels", h.listCityHotels)
	s.mux.Get("/v1/status", h.status)
	s.mux.Post("/v1/refresh", h.refresh)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- filter parsing ----

func parseFloatPtr(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseFloatList(v string) []float64 {
	if v == "" {
		return nil
	}
	var out []float64
	for _, part := range strings.Split(v, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue // malformed entries are simply inactive
		}
		out = append(out, f)
	}
	return out
}

func parseFilters(r *http.Request) domain.Filters {
	q := r.URL.Query()
	return domain.Filters{
		Query:       q.Get("q"),
		MinPrice:    parseFloatPtr(q.Get("min_price")),
		MaxPrice:    parseFloatPtr(q.Get("max_price")),
		Stars:       parseFloatList(q.Get("stars")),
		UserRatings: parseFloatList(q.Get("ratings")),
		MaxDistance: parseFloatPtr(q.Get("max_distance")),
		SortBy:      domain.SortOption(q.Get("sort")),
	}
}

func (h *Handlers) displayLocale(r *http.Request) language.Tag {
	return h.F.Locale(r.Header.Get("Accept-Language"))
}

func (h *Handlers) render(tag language.Tag, hs []domain.Hotel) []hotelResponse {
	out := make([]hotelResponse, 0, len(hs))
	for _, hotel := range hs {
		out = append(out, hotelResponse{
			Hotel:        hotel,
			DisplayPrice: h.F.FormatIn(tag, hotel.Price, hotel.Currency),
		})
	}
	return out
}

// ---- handlers ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hs := h.Q.ListHotels(r.Context(), parseFilters(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"items": h.render(h.displayLocale(r), hs),
		"count": len(hs),
	})
}

func (h *Handlers) listCityHotels(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, err := h.Q.City(name); err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown city")
		return
	}
	hs := h.Q.CityHotels(r.Context(), name, parseFilters(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"items": h.render(h.displayLocale(r), hs),
		"count": len(hs),
	})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	hotel, err := h.Q.GetHotel(id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	resp := hotelResponse{
		Hotel:        hotel,
		DisplayPrice: h.F.FormatIn(h.displayLocale(r), hotel.Price, hotel.Currency),
	}

	etag, body := calcETagAndBody(resp)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": h.Q.Cities()})
}

func (h *Handlers) getCity(w http.ResponseWriter, r *http.Request) {
	c, err := h.Q.City(chi.URLParam(r, "name"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown city")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.Stats())
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	n, err := h.R.Refresh(r.Context())
	if err != nil {
		writeProblem(w, http.StatusBadGateway, "Feed Unavailable", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotels": n})
}
