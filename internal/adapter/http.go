package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/models"
)

// defaultRetries is how often a 503 answer is retried.
const defaultRetries = 2

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The address may omit the scheme; http is assumed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout, defaultRetries),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// slotBody builds the body shared by Unassign and Assign.
func slotBody(login models.Credentials, key models.BoxKey, index int) map[string]any {
	body := map[string]any{
		"login":        login,
		"numberOfSlot": index,
	}
	if key.ID != "" {
		body["id"] = key.ID
	} else {
		body["name"] = key.Name
	}
	return body
}

func (h *httpServerAdapter) Unassign(ctx context.Context, login models.Credentials, key models.BoxKey, index int) (string, error) {
	return h.sendForMessage(ctx, http.MethodPut, "/api/Unassign", slotBody(login, key, index))
}

func (h *httpServerAdapter) Assign(ctx context.Context, login models.Credentials, key models.BoxKey, index int, userEmail string) (string, error) {
	body := slotBody(login, key, index)
	body["email"] = userEmail

	return h.sendForMessage(ctx, http.MethodPut, "/api/Assign", body)
}

func (h *httpServerAdapter) NewBox(ctx context.Context, login models.Credentials, name, placement string, size int) (models.Box, error) {
	var created models.BoxResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"login":     login,
			"name":      name,
			"placement": placement,
			"size":      size,
		}).
		SetResult(&created).
		Post("/api/NewBox")
	if err != nil {
		return models.Box{}, fmt.Errorf("new box request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Box{}, err
	}

	return created.Box, nil
}

func (h *httpServerAdapter) GetBox(ctx context.Context, key models.BoxKey) (models.Box, error) {
	var box models.Box

	req := h.client.R().SetContext(ctx).SetResult(&box)

	path := "/api/Box"
	if key.ID != "" {
		req.SetPathParam("id", key.ID)
		path = "/api/Box/{id}"
	} else {
		req.SetQueryParam("name", key.Name)
	}

	resp, err := req.Get(path)
	if err != nil {
		return models.Box{}, fmt.Errorf("get box request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Box{}, err
	}

	return box, nil
}

func (h *httpServerAdapter) NewUser(ctx context.Context, login models.Credentials, name string, account models.Credentials) (string, error) {
	return h.sendForMessage(ctx, http.MethodPost, "/api/NewUser", newAccountBody(login, name, account))
}

func (h *httpServerAdapter) NewAdmin(ctx context.Context, login models.Credentials, name string, account models.Credentials) (string, error) {
	return h.sendForMessage(ctx, http.MethodPost, "/api/NewAdmin", newAccountBody(login, name, account))
}

func newAccountBody(login models.Credentials, name string, account models.Credentials) map[string]any {
	return map[string]any{
		"login":    login,
		"name":     name,
		"email":    account.Email,
		"password": account.Password,
	}
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (int64, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&result).
		Post("/api/Login")
	if err != nil {
		return 0, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.TimeOfUse, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) (string, error) {
	return h.sendForMessage(ctx, http.MethodPut, "/api/ChangePassword", change)
}

func (h *httpServerAdapter) ChangeAdminPassword(ctx context.Context, change models.PasswordChange) (string, error) {
	return h.sendForMessage(ctx, http.MethodPut, "/api/ChangeAdminPassword", change)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// sendForMessage sends body and returns the "message" of a 2xx answer.
func (h *httpServerAdapter) sendForMessage(ctx context.Context, method, path string, body any) (string, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Execute(method, path)
	if err != nil {
		return "", fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("server rejected request")
		return "", err
	}

	return result.Message, nil
}
