package http

import (
	"net/http"

	"github.com/MKhiriev/go-box-keeper/internal/app"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
)

var loginErrors = []errorResponse{
	{ErrUnexpectedBody, http.StatusBadRequest, "Specify { email: String, password: Sha512 String }"},
	{validators.ErrInvalidPassword, http.StatusBadRequest, app.MsgLoginPasswordFormat},
}

var changePasswordErrors = []errorResponse{
	{ErrUnexpectedBody, http.StatusBadRequest, "Specify { email: string, oldPassword: Sha512 String, newPassword: Sha512 String }"},
}

var changeAdminPasswordErrors = []errorResponse{
	{ErrUnexpectedBody, http.StatusBadRequest, "Specify { email: string, oldPassword: Sha512 string, newPassword: sha512String }"},
}

var newAccountErrors = []errorResponse{
	{ErrUnexpectedBody, http.StatusBadRequest, "Specify { login: { email:string, password: Sha512 String }, name: String, email: String, password: String }"},
}

// login checks user credentials and reports the accumulated time of use.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, err, loginErrors)
		return
	}
	if !body.hasKeys("email", "password") {
		writeError(w, r, ErrUnexpectedBody, loginErrors)
		return
	}

	// type mismatches decode to "" and fail validation with the same message
	email, _ := body.str("email")
	password, _ := body.str("password")

	user, err := h.services.UserAccountService.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		writeError(w, r, err, loginErrors)
		return
	}

	var timeOfUse int64
	if user.TimeOfUse != nil {
		timeOfUse = *user.TimeOfUse
	}

	utils.WriteJSON(w, models.LoginResponse{Message: app.MsgLoginSuccessful, TimeOfUse: timeOfUse}, http.StatusOK)
}

// changePassword rotates a user digest.
func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	change, ok := decodePasswordChange(w, r, changePasswordErrors)
	if !ok {
		return
	}

	if err := h.services.UserAccountService.ChangePassword(r.Context(), change); err != nil {
		writeError(w, r, err, changePasswordErrors)
		return
	}

	writeMessage(w, app.MsgPasswordChanged)
}

// changeAdminPassword rotates an admin digest. The admin proves identity
// with the old digest, not with a login object.
func (h *Handler) changeAdminPassword(w http.ResponseWriter, r *http.Request) {
	change, ok := decodePasswordChange(w, r, changeAdminPasswordErrors)
	if !ok {
		return
	}

	if err := h.services.AdminAccountService.ChangePassword(r.Context(), change); err != nil {
		writeError(w, r, err, changeAdminPasswordErrors)
		return
	}

	writeMessage(w, app.MsgOperationSuccess)
}

func decodePasswordChange(w http.ResponseWriter, r *http.Request, routeErrors []errorResponse) (models.PasswordChange, bool) {
	body, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, err, routeErrors)
		return models.PasswordChange{}, false
	}
	if !body.hasKeys("email", "oldPassword", "newPassword") {
		writeError(w, r, ErrUnexpectedBody, routeErrors)
		return models.PasswordChange{}, false
	}

	email, _ := body.str("email")
	oldPassword, _ := body.str("oldPassword")
	newPassword, _ := body.str("newPassword")

	return models.PasswordChange{Email: email, OldPassword: oldPassword, NewPassword: newPassword}, true
}

// newAccountFields is the decoded body of the account creation routes.
type newAccountFields struct {
	admin    models.Admin
	name     string
	email    string
	password string
}

// decodeNewAccount checks the body shape, runs the admin gate and checks
// the name type. Email and password are validated by the services.
func (h *Handler) decodeNewAccount(w http.ResponseWriter, r *http.Request) (newAccountFields, bool) {
	body, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, err, newAccountErrors)
		return newAccountFields{}, false
	}
	if !body.hasKeys("login", "name", "email", "password") {
		writeError(w, r, ErrUnexpectedBody, newAccountErrors)
		return newAccountFields{}, false
	}

	admin, err := h.authorize(r.Context(), body)
	if err != nil {
		writeError(w, r, err, newAccountErrors)
		return newAccountFields{}, false
	}

	name, ok := body.str("name")
	if !ok {
		writeError(w, r, validators.ErrInvalidName, newAccountErrors)
		return newAccountFields{}, false
	}

	email, _ := body.str("email")
	password, _ := body.str("password")

	return newAccountFields{admin: admin, name: name, email: email, password: password}, true
}

// newAdmin lets an admin register another admin.
func (h *Handler) newAdmin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	fields, ok := h.decodeNewAccount(w, r)
	if !ok {
		return
	}

	created, err := h.services.AdminAccountService.CreateAdmin(r.Context(), models.Admin{
		Name:     fields.name,
		Email:    fields.email,
		Password: fields.password,
	})
	if err != nil {
		writeError(w, r, err, newAccountErrors)
		return
	}

	log.Info().Str("admin_email", fields.admin.Email).Str("created_admin_id", created.AdminID).Msg("admin created")
	writeMessage(w, app.MsgAdminCreated)
}

// newUser lets an admin register a customer.
func (h *Handler) newUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	fields, ok := h.decodeNewAccount(w, r)
	if !ok {
		return
	}

	created, err := h.services.UserAccountService.CreateUser(r.Context(), models.User{
		Name:     fields.name,
		Email:    fields.email,
		Password: fields.password,
	})
	if err != nil {
		writeError(w, r, err, newAccountErrors)
		return
	}

	log.Info().Str("admin_email", fields.admin.Email).Str("created_user_id", created.UserID).Msg("user created")
	writeMessage(w, app.MsgUserCreated)
}
