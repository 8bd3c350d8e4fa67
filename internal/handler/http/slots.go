package http

import (
	"net/http"

	"github.com/MKhiriev/go-box-keeper/internal/app"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
)

var unassignErrors = []errorResponse{
	{ErrUnexpectedBody, http.StatusBadRequest, "Specify { login: { email: String, password: Sha512 String }, name: String|id, numberOfSlot: Number }"},
}

var assignErrors = []errorResponse{
	{ErrUnexpectedBody, http.StatusBadRequest, "Specify { login: { email: String, password: Sha512 String }, name: String|id, numberOfSlot: Number, email: String }"},
}

// unassign frees a slot and credits its occupant.
//
// Body: {login, name|id, numberOfSlot}. Only the number of keys is checked
// before the admin gate; the fields themselves are checked after it.
func (h *Handler) unassign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, err, unassignErrors)
		return
	}
	if len(body) != 3 {
		writeError(w, r, ErrUnexpectedBody, unassignErrors)
		return
	}

	admin, err := h.authorize(ctx, body)
	if err != nil {
		writeError(w, r, err, unassignErrors)
		return
	}

	index, ok := body.integer("numberOfSlot")
	if !ok {
		writeError(w, r, ErrSlotNumberType, unassignErrors)
		return
	}

	key, err := body.boxKey()
	if err != nil {
		writeError(w, r, err, unassignErrors)
		return
	}

	release, err := h.services.SlotService.Unassign(ctx, models.UnassignCommand{
		Admin: admin,
		Box:   key,
		Index: index,
	})
	if err != nil {
		writeError(w, r, err, unassignErrors)
		return
	}

	log.Info().
		Str("admin_email", admin.Email).
		Str("box_id", release.BoxID).
		Int("slot", release.Index).
		Int64("elapsed_ms", release.Elapsed).
		Msg("slot unassigned")

	writeMessage(w, app.MsgSlotUnassigned)
}

// assign seats a user in a free slot.
//
// Body: {login, name|id, numberOfSlot, email}.
func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, err, assignErrors)
		return
	}
	if len(body) != 4 {
		writeError(w, r, ErrUnexpectedBody, assignErrors)
		return
	}

	admin, err := h.authorize(ctx, body)
	if err != nil {
		writeError(w, r, err, assignErrors)
		return
	}

	index, ok := body.integer("numberOfSlot")
	if !ok {
		writeError(w, r, ErrSlotNumberType, assignErrors)
		return
	}

	key, err := body.boxKey()
	if err != nil {
		writeError(w, r, err, assignErrors)
		return
	}

	email, ok := body.str("email")
	if !ok || email == "" {
		writeError(w, r, validators.ErrInvalidEmail, assignErrors)
		return
	}

	box, err := h.services.SlotService.Assign(ctx, models.AssignCommand{
		Admin:     admin,
		Box:       key,
		Index:     index,
		UserEmail: email,
	})
	if err != nil {
		writeError(w, r, err, assignErrors)
		return
	}

	log.Info().Str("admin_email", admin.Email).Str("box_id", box.BoxID).Int("slot", index).Msg("slot assigned")

	writeMessage(w, app.MsgSlotAssigned)
}
