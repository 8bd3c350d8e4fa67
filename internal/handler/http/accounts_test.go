package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-box-keeper/internal/service"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
}

// ─────────────────────────────────────────────
// POST /api/Login
// ─────────────────────────────────────────────

func TestLogin_Success_ReturnsTimeOfUse(t *testing.T) {
	s := newTestServices()
	used := int64(3_600_000)
	s.users.loginFn = func(_ context.Context, c models.Credentials) (models.User, error) {
		assert.Equal(t, "bob@example.com", c.Email)
		return models.User{UserID: "u1", TimeOfUse: &used}, nil
	}

	rec := doJSON(t, s.router(nil), http.MethodPost, "/api/Login", map[string]any{
		"email": "bob@example.com", "password": digest("a"),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, used, resp.TimeOfUse)
}

func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		body        any
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "extra key",
			body:        map[string]any{"email": "bob@example.com", "password": digest("a"), "x": 1},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Specify { email: String, password: Sha512 String }",
		},
		{
			name:        "email is not a string",
			body:        map[string]any{"email": 1, "password": digest("a")},
			serviceErr:  invalid(validators.ErrInvalidEmail),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email must be a string",
		},
		{
			name:        "password is not a digest",
			body:        map[string]any{"email": "bob@example.com", "password": "secret"},
			serviceErr:  invalid(validators.ErrInvalidPassword),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "The password must be in sha512",
		},
		{
			name:        "unknown user",
			body:        map[string]any{"email": "bob@example.com", "password": digest("a")},
			serviceErr:  service.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name:        "wrong digest",
			body:        map[string]any{"email": "bob@example.com", "password": digest("a")},
			serviceErr:  service.ErrWrongCredentials,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Wrong confidentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.users.loginFn = func(context.Context, models.Credentials) (models.User, error) {
				return models.User{}, tt.serviceErr
			}

			rec := doJSON(t, s.router(nil), http.MethodPost, "/api/Login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// PUT /api/ChangePassword, /api/ChangeAdminPassword
// ─────────────────────────────────────────────

func TestChangePassword(t *testing.T) {
	s := newTestServices()
	var got models.PasswordChange
	s.users.changePasswordFn = func(_ context.Context, change models.PasswordChange) error {
		got = change
		return nil
	}
	router := s.router(nil)

	rec := doJSON(t, router, http.MethodPut, "/api/ChangePassword", map[string]any{
		"email": "bob@example.com", "oldPassword": digest("a"), "newPassword": digest("b"),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password changed successfully", messageOf(t, rec))
	assert.Equal(t, digest("b"), got.NewPassword)

	rec = doJSON(t, router, http.MethodPut, "/api/ChangePassword", map[string]any{"email": "bob@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Specify { email: string, oldPassword: Sha512 String, newPassword: Sha512 String }", messageOf(t, rec))
}

func TestChangePassword_FormatMessages(t *testing.T) {
	tests := []struct {
		err         error
		wantMessage string
	}{
		{invalid(validators.ErrInvalidOldPassword), "OldPassword must be in sha512 format"},
		{invalid(validators.ErrInvalidNewPassword), "NewPassword must be in sha512 format"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMessage, func(t *testing.T) {
			s := newTestServices()
			s.users.changePasswordFn = func(context.Context, models.PasswordChange) error { return tt.err }

			rec := doJSON(t, s.router(nil), http.MethodPut, "/api/ChangePassword", map[string]any{
				"email": "bob@example.com", "oldPassword": "x", "newPassword": "y",
			})

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rec))
		})
	}
}

func TestChangeAdminPassword(t *testing.T) {
	s := newTestServices()
	router := s.router(nil)

	rec := doJSON(t, router, http.MethodPut, "/api/ChangeAdminPassword", map[string]any{
		"email": "root@example.com", "oldPassword": digest("a"), "newPassword": digest("b"),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Operation success", messageOf(t, rec))

	rec = doJSON(t, router, http.MethodPut, "/api/ChangeAdminPassword", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Specify { email: string, oldPassword: Sha512 string, newPassword: sha512String }", messageOf(t, rec))

	s.admins.changePasswordFn = func(context.Context, models.PasswordChange) error { return service.ErrAdminNotFound }
	rec = doJSON(t, router, http.MethodPut, "/api/ChangeAdminPassword", map[string]any{
		"email": "nobody@example.com", "oldPassword": digest("a"), "newPassword": digest("b"),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Admin not found", messageOf(t, rec))
}

// ─────────────────────────────────────────────
// POST /api/NewAdmin, /api/NewUser
// ─────────────────────────────────────────────

const newAccountUsage = "Specify { login: { email:string, password: Sha512 String }, name: String, email: String, password: String }"

func TestNewUser_Success(t *testing.T) {
	s := newTestServices()
	var got models.User
	s.users.createUserFn = func(_ context.Context, user models.User) (models.User, error) {
		got = user
		user.UserID = "u-new"
		return user, nil
	}

	rec := doJSON(t, s.router(nil), http.MethodPost, "/api/NewUser", map[string]any{
		"login": validLogin, "name": "Bob", "email": "bob@example.com", "password": digest("c"),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User created successfully", messageOf(t, rec))
	assert.Equal(t, models.User{Name: "Bob", Email: "bob@example.com", Password: digest("c")}, got)
}

func TestNewAdmin_Success(t *testing.T) {
	s := newTestServices()

	rec := doJSON(t, s.router(nil), http.MethodPost, "/api/NewAdmin", map[string]any{
		"login": validLogin, "name": "", "email": "ann@example.com", "password": digest("c"),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Admin created successfully", messageOf(t, rec))
}

func TestNewAccount_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		body        map[string]any
		gateErr     error
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "user: missing password",
			path:        "/api/NewUser",
			body:        map[string]any{"login": validLogin, "name": "Bob", "email": "bob@example.com"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: newAccountUsage,
		},
		{
			name:        "admin: unknown key",
			path:        "/api/NewAdmin",
			body:        map[string]any{"login": validLogin, "nick": "Ann", "email": "ann@example.com", "password": digest("c")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: newAccountUsage,
		},
		{
			name:        "admin: gate rejects",
			path:        "/api/NewAdmin",
			body:        map[string]any{"login": validLogin, "name": "Ann", "email": "ann@example.com", "password": digest("c")},
			gateErr:     service.ErrBadLoginPassword,
			wantStatus:  http.StatusForbidden,
			wantMessage: "bad login password",
		},
		{
			name:        "user: name is a number",
			path:        "/api/NewUser",
			body:        map[string]any{"login": validLogin, "name": 3, "email": "bob@example.com", "password": digest("c")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Name must be a string",
		},
		{
			name:        "user: empty email",
			path:        "/api/NewUser",
			body:        map[string]any{"login": validLogin, "name": "Bob", "email": "", "password": digest("c")},
			serviceErr:  invalid(validators.ErrInvalidEmail),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email must be a string",
		},
		{
			name:        "admin: plain password",
			path:        "/api/NewAdmin",
			body:        map[string]any{"login": validLogin, "name": "Ann", "email": "ann@example.com", "password": "pw"},
			serviceErr:  invalid(validators.ErrInvalidPassword),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must be in sha512 format",
		},
		{
			name:        "user: email taken",
			path:        "/api/NewUser",
			body:        map[string]any{"login": validLogin, "name": "Bob", "email": "bob@example.com", "password": digest("c")},
			serviceErr:  service.ErrUserEmailTaken,
			wantStatus:  http.StatusConflict,
			wantMessage: "A user with this email already exists",
		},
		{
			name:        "admin: email taken",
			path:        "/api/NewAdmin",
			body:        map[string]any{"login": validLogin, "name": "Ann", "email": "ann@example.com", "password": digest("c")},
			serviceErr:  service.ErrAdminEmailTaken,
			wantStatus:  http.StatusConflict,
			wantMessage: "An admin with this email already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			if tt.gateErr != nil {
				s.gate.authorizeFn = func(context.Context, models.Credentials) (models.Admin, error) {
					return models.Admin{}, tt.gateErr
				}
			}
			s.users.createUserFn = func(context.Context, models.User) (models.User, error) {
				return models.User{}, tt.serviceErr
			}
			s.admins.createAdminFn = func(context.Context, models.Admin) (models.Admin, error) {
				return models.Admin{}, tt.serviceErr
			}

			rec := doJSON(t, s.router(nil), http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rec))
		})
	}
}
