package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"travelhub/internal/app"
	"travelhub/internal/domain"
)

type Handlers struct {
	Destinations *app.DestinationService
	Hotels       *app.HotelService
	Env          string
}

var availableEndpoints = []string{
	"GET /destinations",
	"POST /destinations",
	"GET /destinations/{id}",
	"PUT /destinations/{id}",
	"DELETE /destinations/{id}",
	"GET /destinations/{id}/hotels",
	"GET /hotels",
	"POST /hotels",
	"GET /hotels/{id}",
	"PUT /hotels/{id}",
	"DELETE /hotels/{id}",
	"GET /hotels/destination/{destinationId}",
	"GET /hotels/search/filter",
	"GET /health",
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Route("/destinations", func(r chi.Router) {
		r.Get("/", h.listDestinations)
		r.Post("/", h.createDestination)
		r.Get("/{id}", h.getDestination)
		r.Put("/{id}", h.updateDestination)
		r.Delete("/{id}", h.deleteDestination)
		r.Get("/{id}/hotels", h.listDestinationHotels)
	})
	s.mux.Route("/hotels", func(r chi.Router) {
		r.Get("/", h.listHotels)
		r.Post("/", h.createHotel)
		// fixed segments before the id wildcard
		r.Get("/search/filter", h.filterHotels)
		r.Get("/destination/{destinationId}", h.listHotelsByDestination)
		r.Get("/{id}", h.getHotel)
		r.Put("/{id}", h.updateHotel)
		r.Delete("/{id}", h.deleteHotel)
	})
	s.mux.Get("/health", h.health)
	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{
			Success: false,
			Message: "endpoint not found",
			Data:    map[string]any{"availableEndpoints": availableEndpoints},
		})
	})
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"environment": h.Env,
	})
}

// Bound checks on the raw payload, before any store or reference work. The
// same checks run again inside record validation; the handler layer rejects
// early with identical messages.

func checkDestinationBounds(p domain.DestinationPatch) error {
	if c := p.Coordinates; c != nil {
		if c.Lat != nil {
			if err := domain.CheckLatitude(*c.Lat); err != nil {
				return err
			}
		}
		if c.Lon != nil {
			if err := domain.CheckLongitude(*c.Lon); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkHotelBounds(p domain.HotelPatch) error {
	if p.Stars != nil {
		if err := domain.CheckStars(*p.Stars); err != nil {
			return err
		}
	}
	if p.Rating != nil {
		if err := domain.CheckRating(*p.Rating); err != nil {
			return err
		}
	}
	if p.PriceFrom != nil {
		if err := domain.CheckPriceFrom(*p.PriceFrom); err != nil {
			return err
		}
	}
	if p.PricePerNight != nil {
		if err := domain.CheckPricePerNight(*p.PricePerNight); err != nil {
			return err
		}
	}
	return nil
}

// ---- destinations ----

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.Destinations.List(r.Context())
	if err != nil {
		h.writeError(w, err, "destination not found")
		return
	}
	if ds == nil {
		ds = []domain.Destination{}
	}
	writeList(w, ds, len(ds))
}

func (h *Handlers) getDestination(w http.ResponseWriter, r *http.Request) {
	d, err := h.Destinations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err, "destination not found")
		return
	}
	writeData(w, http.StatusOK, d)
}

func (h *Handlers) createDestination(w http.ResponseWriter, r *http.Request) {
	var p domain.DestinationPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeValidation(w, "invalid JSON body")
		return
	}
	if err := checkDestinationBounds(p); err != nil {
		writeValidation(w, domain.ValidationMessage(err))
		return
	}
	d, err := h.Destinations.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, err, "destination not found")
		return
	}
	writeData(w, http.StatusCreated, d)
}

func (h *Handlers) updateDestination(w http.ResponseWriter, r *http.Request) {
	var p domain.DestinationPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeValidation(w, "invalid JSON body")
		return
	}
	if err := checkDestinationBounds(p); err != nil {
		writeValidation(w, domain.ValidationMessage(err))
		return
	}
	d, err := h.Destinations.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		h.writeError(w, err, "destination not found")
		return
	}
	writeData(w, http.StatusOK, d)
}

func (h *Handlers) deleteDestination(w http.ResponseWriter, r *http.Request) {
	if err := h.Destinations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "destination not found")
		return
	}
	writeMessage(w, http.StatusOK, "destination deleted")
}

func (h *Handlers) listDestinationHotels(w http.ResponseWriter, r *http.Request) {
	hs, err := h.Hotels.ListByDestination(r.Context(), chi.URLParam(r, "id"), true)
	if err != nil {
		h.writeError(w, err, "destination not found")
		return
	}
	if hs == nil {
		hs = []domain.Hotel{}
	}
	writeList(w, hs, len(hs))
}

// ---- hotels ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hs, err := h.Hotels.List(r.Context(), true)
	if err != nil {
		h.writeError(w, err, "hotel not found")
		return
	}
	if hs == nil {
		hs = []domain.Hotel{}
	}
	writeList(w, hs, len(hs))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.Get(r.Context(), chi.URLParam(r, "id"), true)
	if err != nil {
		h.writeError(w, err, "hotel not found")
		return
	}
	writeData(w, http.StatusOK, hotel)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var p domain.HotelPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeValidation(w, "invalid JSON body")
		return
	}
	if err := checkHotelBounds(p); err != nil {
		writeValidation(w, domain.ValidationMessage(err))
		return
	}
	hotel, err := h.Hotels.Create(r.Context(), p)
	if err != nil {
		h.writeError(w, err, "hotel not found")
		return
	}
	writeData(w, http.StatusCreated, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var p domain.HotelPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeValidation(w, "invalid JSON body")
		return
	}
	if err := checkHotelBounds(p); err != nil {
		writeValidation(w, domain.ValidationMessage(err))
		return
	}
	hotel, err := h.Hotels.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		h.writeError(w, err, "hotel not found")
		return
	}
	writeData(w, http.StatusOK, hotel)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err, "hotel not found")
		return
	}
	writeMessage(w, http.StatusOK, "hotel deleted")
}

func (h *Handlers) listHotelsByDestination(w http.ResponseWriter, r *http.Request) {
	hs, err := h.Hotels.ListByDestination(r.Context(), chi.URLParam(r, "destinationId"), true)
	if err != nil {
		h.writeError(w, err, "hotel not found")
		return
	}
	if hs == nil {
		hs = []domain.Hotel{}
	}
	writeList(w, hs, len(hs))
}

func (h *Handlers) filterHotels(w http.ResponseWriter, r *http.Request) {
	f, err := parseHotelFilter(r)
	if err != nil {
		writeValidation(w, err.Error())
		return
	}
	hs, err := h.Hotels.Filter(r.Context(), f, true)
	if err != nil {
		h.writeError(w, err, "hotel not found")
		return
	}
	if hs == nil {
		hs = []domain.Hotel{}
	}
	writeList(w, hs, len(hs))
}

type filterError string

func (e filterError) Error() string { return string(e) }

// parseHotelFilter reads the filter query string. Numeric params must parse;
// a malformed value is a validation failure, never silently ignored.
func parseHotelFilter(r *http.Request) (domain.HotelFilter, error) {
	var f domain.HotelFilter
	q := r.URL.Query()

	if v := q.Get("destinationId"); v != "" {
		f.DestinationID = &v
	}
	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{"minPrice", &f.MinPrice},
		{"maxPrice", &f.MaxPrice},
		{"minRating", &f.MinRating},
		{"maxRating", &f.MaxRating},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.HotelFilter{}, filterError(p.name + " must be a number")
		}
		*p.dst = &n
	}
	// repeated params and comma-separated values both work
	for _, raw := range q["amenities"] {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}
	f.SortBy = q.Get("sortBy")
	f.SortOrder = strings.ToLower(q.Get("sortOrder"))
	return f, nil
}
