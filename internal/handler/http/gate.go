package http

import (
	"context"

	"github.com/MKhiriev/go-box-keeper/models"
)

// authorize runs the admin gate on the "login" object of body.
func (h *Handler) authorize(ctx context.Context, body requestBody) (models.Admin, error) {
	login, ok := body.credentials("login")
	if !ok {
		return models.Admin{}, ErrMalformedLogin
	}

	return h.services.AdminGateService.Authorize(ctx, login)
}
