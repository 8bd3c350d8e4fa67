package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/service"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type fakeAdminGate struct {
	authorizeFn func(ctx context.Context, login models.Credentials) (models.Admin, error)
}

func (f *fakeAdminGate) Authorize(ctx context.Context, login models.Credentials) (models.Admin, error) {
	if f.authorizeFn != nil {
		return f.authorizeFn(ctx, login)
	}
	return models.Admin{AdminID: "a1", Email: login.Email}, nil
}

type fakeBoxService struct {
	resolveFn func(ctx context.Context, key models.BoxKey) (models.Box, error)
	createFn  func(ctx context.Context, box models.Box) (models.Box, error)
}

func (f *fakeBoxService) Resolve(ctx context.Context, key models.BoxKey) (models.Box, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, key)
	}
	return models.Box{}, nil
}

func (f *fakeBoxService) Create(ctx context.Context, box models.Box) (models.Box, error) {
	if f.createFn != nil {
		return f.createFn(ctx, box)
	}
	return box, nil
}

type fakeSlotService struct {
	unassignFn func(ctx context.Context, cmd models.UnassignCommand) (models.SlotRelease, error)
	assignFn   func(ctx context.Context, cmd models.AssignCommand) (models.Box, error)
}

func (f *fakeSlotService) Unassign(ctx context.Context, cmd models.UnassignCommand) (models.SlotRelease, error) {
	if f.unassignFn != nil {
		return f.unassignFn(ctx, cmd)
	}
	return models.SlotRelease{}, nil
}

func (f *fakeSlotService) Assign(ctx context.Context, cmd models.AssignCommand) (models.Box, error) {
	if f.assignFn != nil {
		return f.assignFn(ctx, cmd)
	}
	return models.Box{}, nil
}

type fakeUserAccounts struct {
	loginFn          func(ctx context.Context, credentials models.Credentials) (models.User, error)
	changePasswordFn func(ctx context.Context, change models.PasswordChange) error
	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
}

func (f *fakeUserAccounts) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, credentials)
	}
	return models.User{}, nil
}

func (f *fakeUserAccounts) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if f.changePasswordFn != nil {
		return f.changePasswordFn(ctx, change)
	}
	return nil
}

func (f *fakeUserAccounts) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if f.createUserFn != nil {
		return f.createUserFn(ctx, user)
	}
	return user, nil
}

type fakeAdminAccounts struct {
	createAdminFn    func(ctx context.Context, admin models.Admin) (models.Admin, error)
	changePasswordFn func(ctx context.Context, change models.PasswordChange) error
}

func (f *fakeAdminAccounts) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	if f.createAdminFn != nil {
		return f.createAdminFn(ctx, admin)
	}
	return admin, nil
}

func (f *fakeAdminAccounts) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	if f.changePasswordFn != nil {
		return f.changePasswordFn(ctx, change)
	}
	return nil
}

type fakeAppInfo struct {
	version string
}

func (f *fakeAppInfo) GetAppVersion(_ context.Context) string {
	return f.version
}

type fakeMetrics struct {
	routes []string
}

func (f *fakeMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.routes = append(f.routes, method+" "+route)
}

func (f *fakeMetrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("# metrics"))
	})
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices has every service faked; tests override what they need.
type testServices struct {
	gate   *fakeAdminGate
	boxes  *fakeBoxService
	slots  *fakeSlotService
	users  *fakeUserAccounts
	admins *fakeAdminAccounts
}

func newTestServices() *testServices {
	return &testServices{
		gate:   &fakeAdminGate{},
		boxes:  &fakeBoxService{},
		slots:  &fakeSlotService{},
		users:  &fakeUserAccounts{},
		admins: &fakeAdminAccounts{},
	}
}

func (s *testServices) router(m Metrics) http.Handler {
	h := NewHandler(&service.Services{
		AdminGateService:    s.gate,
		BoxService:          s.boxes,
		SlotService:         s.slots,
		UserAccountService:  s.users,
		AdminAccountService: s.admins,
		AppInfoService:      &fakeAppInfo{version: "1.2.3"},
	}, m, logger.Nop())
	return h.Init()
}

func digest(c string) string {
	return strings.Repeat(c, 128)
}

var validLogin = map[string]any{"email": "root@example.com", "password": digest("a")}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Message
}
