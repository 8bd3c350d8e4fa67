package http

import (
	"net/http"

	"github.com/MKhiriev/go-box-keeper/internal/app"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/go-chi/chi/v5"
)

var newBoxErrors = []errorResponse{
	{ErrUnexpectedBody, http.StatusBadRequest, "Specify { login: { email: String, password: Sha512 String }, name: String, placement: String, size: Number }"},
}

// newBox creates a box with every slot free.
func (h *Handler) newBox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, err, newBoxErrors)
		return
	}
	if !body.hasKeys("login", "name", "placement", "size") {
		writeError(w, r, ErrUnexpectedBody, newBoxErrors)
		return
	}

	if _, err = h.authorize(ctx, body); err != nil {
		writeError(w, r, err, newBoxErrors)
		return
	}

	name, ok := body.str("name")
	if !ok {
		writeError(w, r, validators.ErrInvalidName, newBoxErrors)
		return
	}
	placement, ok := body.str("placement")
	if !ok {
		writeError(w, r, validators.ErrInvalidPlacement, newBoxErrors)
		return
	}
	size, ok := body.integer("size")
	if !ok {
		writeError(w, r, validators.ErrInvalidBoxSize, newBoxErrors)
		return
	}

	box, err := h.services.BoxService.Create(ctx, models.Box{
		Name:      name,
		Placement: placement,
		Size:      size,
	})
	if err != nil {
		writeError(w, r, err, newBoxErrors)
		return
	}

	utils.WriteJSON(w, models.BoxResponse{Message: app.MsgBoxCreated, Box: box}, http.StatusOK)
}

// getBox returns the box with the id from the path.
func (h *Handler) getBox(w http.ResponseWriter, r *http.Request) {
	h.writeBox(w, r, models.BoxKey{ID: chi.URLParam(r, "id")})
}

// findBox returns the earliest created box named by the "name" query
// parameter.
func (h *Handler) findBox(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, r, ErrBoxKeyMissing, nil)
		return
	}

	h.writeBox(w, r, models.BoxKey{Name: name})
}

func (h *Handler) writeBox(w http.ResponseWriter, r *http.Request, key models.BoxKey) {
	box, err := h.services.BoxService.Resolve(r.Context(), key)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	utils.WriteJSON(w, box, http.StatusOK)
}
