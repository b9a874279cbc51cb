package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	httpmw "github.com/pulkitchauhan42/TGP/internal/http/middleware"
	"github.com/pulkitchauhan42/TGP/internal/http/response"
)

func (h *Handlers) bookedSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.Bookings.ListBooked(r.Context(), q.Get("date"), q.Get("location"))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, domain.BookedSlotsResponse{BookedSlots: list})
}

func (h *Handlers) availableSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slots, err := h.Bookings.AvailableSlots(r.Context(), q.Get("date"), q.Get("location"))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, domain.AvailableSlotsResponse{AvailableSlots: slots})
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	var in domain.BookingRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	user := httpmw.CurrentUser(r)
	if _, err := h.Bookings.Book(r.Context(), user.Email, &in); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, domain.MessageResponse{Message: "Booking successful!"})
}

// cancelBooking answers 200 whether or not anything matched.
func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	user := httpmw.CurrentUser(r)
	key := domain.SlotKey{
		Email:    user.Email,
		Location: pathParam(r, "location"),
		Date:     pathParam(r, "date"),
		Time:     pathParam(r, "time"),
	}

	if _, err := h.Bookings.Cancel(r.Context(), key); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, domain.MessageResponse{Message: "Booking canceled!"})
}

// chi matches against the escaped path whenever the request carried
// escapes that change its meaning (an encoded "/"), so params need decoding
// in that case.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
