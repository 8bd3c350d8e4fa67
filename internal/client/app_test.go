package client

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-box-keeper/internal/adapter"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer implements adapter.ServerAdapter; unset functions fail the
// call with errNotStubbed.
type fakeServer struct {
	unassignFn            func(login models.Credentials, key models.BoxKey, index int) (string, error)
	assignFn              func(login models.Credentials, key models.BoxKey, index int, email string) (string, error)
	newBoxFn              func(login models.Credentials, name, placement string, size int) (models.Box, error)
	getBoxFn              func(key models.BoxKey) (models.Box, error)
	newUserFn             func(login models.Credentials, name string, account models.Credentials) (string, error)
	loginFn               func(c models.Credentials) (int64, error)
	changePasswordFn      func(change models.PasswordChange) (string, error)
	changeAdminPasswordFn func(change models.PasswordChange) (string, error)
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeServer) Unassign(_ context.Context, login models.Credentials, key models.BoxKey, index int) (string, error) {
	if f.unassignFn == nil {
		return "", errNotStubbed
	}
	return f.unassignFn(login, key, index)
}

func (f *fakeServer) Assign(_ context.Context, login models.Credentials, key models.BoxKey, index int, email string) (string, error) {
	if f.assignFn == nil {
		return "", errNotStubbed
	}
	return f.assignFn(login, key, index, email)
}

func (f *fakeServer) NewBox(_ context.Context, login models.Credentials, name, placement string, size int) (models.Box, error) {
	if f.newBoxFn == nil {
		return models.Box{}, errNotStubbed
	}
	return f.newBoxFn(login, name, placement, size)
}

func (f *fakeServer) GetBox(_ context.Context, key models.BoxKey) (models.Box, error) {
	if f.getBoxFn == nil {
		return models.Box{}, errNotStubbed
	}
	return f.getBoxFn(key)
}

func (f *fakeServer) NewUser(_ context.Context, login models.Credentials, name string, account models.Credentials) (string, error) {
	if f.newUserFn == nil {
		return "", errNotStubbed
	}
	return f.newUserFn(login, name, account)
}

func (f *fakeServer) NewAdmin(context.Context, models.Credentials, string, models.Credentials) (string, error) {
	return "Admin created successfully", nil
}

func (f *fakeServer) Login(_ context.Context, c models.Credentials) (int64, error) {
	if f.loginFn == nil {
		return 0, errNotStubbed
	}
	return f.loginFn(c)
}

func (f *fakeServer) ChangePassword(_ context.Context, change models.PasswordChange) (string, error) {
	if f.changePasswordFn == nil {
		return "", errNotStubbed
	}
	return f.changePasswordFn(change)
}

func (f *fakeServer) ChangeAdminPassword(_ context.Context, change models.PasswordChange) (string, error) {
	if f.changeAdminPasswordFn == nil {
		return "", errNotStubbed
	}
	return f.changeAdminPasswordFn(change)
}

func (f *fakeServer) Version(context.Context) (string, error) {
	return "2.0.0", nil
}

var _ adapter.ServerAdapter = (*fakeServer)(nil)

func runApp(t *testing.T, server *fakeServer, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := NewApp(server, models.NewAppBuildInfo("1.0.0", "", "abc"), &out, logger.Nop())
	err := app.Run(context.Background(), args)
	return out.String(), err
}

func sha(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestDigest(t *testing.T) {
	assert.Equal(t, sha("secret"), Digest("secret"))
	assert.Equal(t, sha("secret"), Digest(sha("secret")))
	assert.Equal(t, sha("secret"), Digest(strings.ToUpper(sha("secret"))))
	assert.Empty(t, Digest(""))
}

func TestRun_Unassign(t *testing.T) {
	server := &fakeServer{
		unassignFn: func(login models.Credentials, key models.BoxKey, index int) (string, error) {
			assert.Equal(t, models.Credentials{Email: "root@example.com", Password: sha("pw")}, login)
			assert.Equal(t, models.BoxKey{Name: "north"}, key)
			assert.Equal(t, 3, index)
			return "Slot unassigned successfully", nil
		},
	}

	out, err := runApp(t, server, "unassign", "-login-email", "root@example.com", "-login-password", "pw", "-name", "north", "-slot", "3")

	require.NoError(t, err)
	assert.Equal(t, "Slot unassigned successfully\n", out)
}

func TestRun_AssignRequiresEmail(t *testing.T) {
	_, err := runApp(t, &fakeServer{}, "assign", "-login-email", "a", "-login-password", "b", "-id", "box-1", "-slot", "0")

	assert.ErrorIs(t, err, ErrMissingFlag)
}

func TestRun_SelectorErrors(t *testing.T) {
	login := []string{"-login-email", "a", "-login-password", "b"}

	_, err := runApp(t, &fakeServer{}, append([]string{"unassign", "-id", "x", "-name", "y"}, login...)...)
	assert.ErrorIs(t, err, ErrBoxSelector)

	_, err = runApp(t, &fakeServer{}, append([]string{"unassign", "-slot", "1"}, login...)...)
	assert.ErrorIs(t, err, ErrBoxSelector)

	_, err = runApp(t, &fakeServer{}, "unassign", "-id", "x")
	assert.ErrorIs(t, err, ErrMissingFlag)
}

func TestRun_ServerErrorPassesThrough(t *testing.T) {
	server := &fakeServer{
		assignFn: func(models.Credentials, models.BoxKey, int, string) (string, error) {
			return "", adapter.ErrConflict
		},
	}

	_, err := runApp(t, server, "assign", "-login-email", "a", "-login-password", "b", "-id", "box-1", "-slot", "0", "-email", "bob@example.com")

	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestRun_BoxCommands(t *testing.T) {
	server := &fakeServer{
		newBoxFn: func(_ models.Credentials, name, placement string, size int) (models.Box, error) {
			return models.Box{BoxID: "box-7", Name: name, Placement: placement, Size: size, Slots: models.NewSlots(size)}, nil
		},
		getBoxFn: func(key models.BoxKey) (models.Box, error) {
			return models.Box{BoxID: key.ID}, nil
		},
	}

	out, err := runApp(t, server, "box", "new", "-login-email", "a", "-login-password", "b", "-name", "north", "-placement", "hall", "-size", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "box-7"`)
	assert.Contains(t, out, `"slots": [`)

	out, err = runApp(t, server, "box", "get", "-id", "box-3")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "box-3"`)
}

func TestRun_LoginAndPasswd(t *testing.T) {
	var adminChange bool
	server := &fakeServer{
		loginFn: func(c models.Credentials) (int64, error) {
			assert.Equal(t, sha("pw"), c.Password)
			return 1500, nil
		},
		changeAdminPasswordFn: func(change models.PasswordChange) (string, error) {
			adminChange = true
			assert.Equal(t, sha("new"), change.NewPassword)
			return "Operation success", nil
		},
	}

	out, err := runApp(t, server, "login", "-email", "bob@example.com", "-password", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Login successful, time of use: 1500 ms\n", out)

	out, err = runApp(t, server, "passwd", "-admin", "-email", "root@example.com", "-old", "old", "-new", "new")
	require.NoError(t, err)
	assert.True(t, adminChange)
	assert.Equal(t, "Operation success\n", out)
}

func TestRun_NewUser(t *testing.T) {
	server := &fakeServer{
		newUserFn: func(login models.Credentials, name string, account models.Credentials) (string, error) {
			assert.Equal(t, "Bob", name)
			assert.Equal(t, sha("pw"), account.Password)
			return "User created successfully", nil
		},
	}

	out, err := runApp(t, server, "user", "new", "-login-email", "a", "-login-password", "b", "-name", "Bob", "-email", "bob@example.com", "-password", "pw")

	require.NoError(t, err)
	assert.Equal(t, "User created successfully\n", out)
}

func TestRun_Version(t *testing.T) {
	out, err := runApp(t, &fakeServer{}, "version")

	require.NoError(t, err)
	assert.Equal(t, "boxctl 1.0.0 (N/A, abc)\nserver 2.0.0\n", out)
}

func TestRun_UnknownCommand(t *testing.T) {
	out, err := runApp(t, &fakeServer{}, "explode")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, out, "usage: boxctl")

	_, err = runApp(t, &fakeServer{})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
