package client

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-box-keeper/internal/adapter"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/models"
)

const usage = `usage: boxctl <command> [flags]

commands:
  version                     print client and server versions
  box get    -id | -name      show a box
  box new    -name -placement -size
  assign     -id | -name -slot -email
  unassign   -id | -name -slot
  login      -email -password
  user new   -name -email -password
  admin new  -name -email -password
  passwd     -email -old -new [-admin]

commands that need an admin take -login-email and -login-password`

type App struct {
	server adapter.ServerAdapter
	build  models.AppBuildInfo
	out    io.Writer

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, build models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{server: server, build: build, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrUnknownCommand
	}

	command, rest := args[0], args[1:]
	if (command == "box" || command == "user" || command == "admin") && len(rest) > 0 {
		command, rest = command+" "+rest[0], rest[1:]
	}

	a.logger.Debug().Str("command", command).Msg("running boxctl command")

	switch command {
	case "version":
		return a.version(ctx)
	case "box get":
		return a.getBox(ctx, rest)
	case "box new":
		return a.newBox(ctx, rest)
	case "assign":
		return a.assign(ctx, rest)
	case "unassign":
		return a.unassign(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "user new":
		return a.newAccount(ctx, rest, a.server.NewUser)
	case "admin new":
		return a.newAccount(ctx, rest, a.server.NewAdmin)
	case "passwd":
		return a.passwd(ctx, rest)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		fmt.Fprintln(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// commandFlags is a flag set that reports errors instead of exiting.
func (a *App) commandFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// adminLogin registers the admin gate flags on fs.
func adminLogin(fs *flag.FlagSet) func() (models.Credentials, error) {
	email := fs.String("login-email", "", "admin email")
	password := fs.String("login-password", "", "admin password")

	return func() (models.Credentials, error) {
		if *email == "" || *password == "" {
			return models.Credentials{}, fmt.Errorf("%w: -login-email and -login-password", ErrMissingFlag)
		}
		return models.Credentials{Email: *email, Password: Digest(*password)}, nil
	}
}

// boxSelector registers -id and -name on fs.
func boxSelector(fs *flag.FlagSet) func() (models.BoxKey, error) {
	id := fs.String("id", "", "box id")
	name := fs.String("name", "", "box name")

	return func() (models.BoxKey, error) {
		if (*id == "") == (*name == "") {
			return models.BoxKey{}, ErrBoxSelector
		}
		return models.BoxKey{ID: *id, Name: *name}, nil
	}
}

// Digest returns the hex sha512 of password. A value that already is a
// digest is passed through, and so is an empty one.
func Digest(password string) string {
	if password == "" {
		return ""
	}
	if isDigest(password) {
		return strings.ToLower(password)
	}

	sum := sha512.Sum512([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isDigest(s string) bool {
	if len(s) != sha512.Size*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func (a *App) version(ctx context.Context) error {
	fmt.Fprintf(a.out, "boxctl %s (%s, %s)\n", orNA(a.build.BuildVersion()), orNA(a.build.BuildDate()), orNA(a.build.BuildCommit()))

	serverVersion, err := a.server.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "server %s\n", orNA(serverVersion))
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (a *App) getBox(ctx context.Context, args []string) error {
	fs := a.commandFlags("box get")
	selector := boxSelector(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, err := selector()
	if err != nil {
		return err
	}

	box, err := a.server.GetBox(ctx, key)
	if err != nil {
		return err
	}

	return a.printBox(box)
}

func (a *App) newBox(ctx context.Context, args []string) error {
	fs := a.commandFlags("box new")
	login := adminLogin(fs)
	name := fs.String("name", "", "box name")
	placement := fs.String("placement", "", "where the box stands")
	size := fs.Int("size", 0, "number of slots")
	if err := fs.Parse(args); err != nil {
		return err
	}

	credentials, err := login()
	if err != nil {
		return err
	}

	box, err := a.server.NewBox(ctx, credentials, *name, *placement, *size)
	if err != nil {
		return err
	}

	return a.printBox(box)
}

func (a *App) printBox(box models.Box) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(box)
}

func (a *App) assign(ctx context.Context, args []string) error {
	fs := a.commandFlags("assign")
	login := adminLogin(fs)
	selector := boxSelector(fs)
	slot := fs.Int("slot", -1, "slot index, starting at 0")
	email := fs.String("email", "", "email of the user to put in the slot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	credentials, key, err := loginAndSelector(login, selector)
	if err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("%w: -email", ErrMissingFlag)
	}

	message, err := a.server.Assign(ctx, credentials, key, *slot, *email)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, message)
	return nil
}

func (a *App) unassign(ctx context.Context, args []string) error {
	fs := a.commandFlags("unassign")
	login := adminLogin(fs)
	selector := boxSelector(fs)
	slot := fs.Int("slot", -1, "slot index, starting at 0")
	if err := fs.Parse(args); err != nil {
		return err
	}

	credentials, key, err := loginAndSelector(login, selector)
	if err != nil {
		return err
	}

	message, err := a.server.Unassign(ctx, credentials, key, *slot)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, message)
	return nil
}

func loginAndSelector(login func() (models.Credentials, error), selector func() (models.BoxKey, error)) (models.Credentials, models.BoxKey, error) {
	credentials, err := login()
	if err != nil {
		return models.Credentials{}, models.BoxKey{}, err
	}

	key, err := selector()
	if err != nil {
		return models.Credentials{}, models.BoxKey{}, err
	}

	return credentials, key, nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.commandFlags("login")
	email := fs.String("email", "", "user email")
	password := fs.String("password", "", "user password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	used, err := a.server.Login(ctx, models.Credentials{Email: *email, Password: Digest(*password)})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Login successful, time of use: %d ms\n", used)
	return nil
}

type createAccountFunc func(ctx context.Context, login models.Credentials, name string, account models.Credentials) (string, error)

func (a *App) newAccount(ctx context.Context, args []string, create createAccountFunc) error {
	fs := a.commandFlags("new account")
	login := adminLogin(fs)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	credentials, err := login()
	if err != nil {
		return err
	}

	message, err := create(ctx, credentials, *name, models.Credentials{Email: *email, Password: Digest(*password)})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, message)
	return nil
}

func (a *App) passwd(ctx context.Context, args []string) error {
	fs := a.commandFlags("passwd")
	email := fs.String("email", "", "account email")
	oldPassword := fs.String("old", "", "current password")
	newPassword := fs.String("new", "", "new password")
	admin := fs.Bool("admin", false, "change an admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	change := models.PasswordChange{
		Email:       *email,
		OldPassword: Digest(*oldPassword),
		NewPassword: Digest(*newPassword),
	}

	send := a.server.ChangePassword
	if *admin {
		send = a.server.ChangeAdminPassword
	}

	message, err := send(ctx, change)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, message)
	return nil
}
