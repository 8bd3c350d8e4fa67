package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-box-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the login email of a user or an admin.
	FieldEmail = "email"

	// FieldPassword targets a password digest.
	FieldPassword = "password"

	// FieldOldPassword targets the current digest in a password change.
	FieldOldPassword = "old_password"

	// FieldNewPassword targets the replacement digest in a password change.
	FieldNewPassword = "new_password"

	// FieldName targets the display name of an account or a box.
	FieldName = "name"

	// FieldPlacement targets where a box is installed.
	FieldPlacement = "placement"

	// FieldSize targets the number of slots of a new box.
	FieldSize = "size"
)

// Box size limits, both inclusive.
const (
	MinBoxSize = 1
	MaxBoxSize = 1000
)

// sha512Digest matches the hex form of a SHA-512 digest in either case.
var sha512Digest = regexp.MustCompile(`^[a-fA-F0-9]{128}$`)

// IsSHA512 reports whether s looks like a hex SHA-512 digest.
func IsSHA512(s string) bool {
	return sha512Digest.MatchString(s)
}

// AccountValidator validates credentials, password changes, new accounts
// and new boxes. Passwords are never hashed here: clients send digests.
type AccountValidator struct{}

// NewAccountValidator returns an [AccountValidator] as a [Validator].
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the type of obj. Without fields every field of the
// type is checked in declaration order.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	case models.User:
		return v.validateAccount(value.Name, value.Email, value.Password, fields...)
	case *models.User:
		return v.validateAccount(value.Name, value.Email, value.Password, fields...)

	case models.Admin:
		return v.validateAccount(value.Name, value.Email, value.Password, fields...)
	case *models.Admin:
		return v.validateAccount(value.Name, value.Email, value.Password, fields...)

	case models.Box:
		return v.validateBox(value, fields...)
	case *models.Box:
		return v.validateBox(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if c.Email == "" {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !IsSHA512(c.Password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validatePasswordChange(c models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if c.Email == "" {
				return ErrInvalidEmail
			}
		case FieldOldPassword:
			if !IsSHA512(c.OldPassword) {
				return ErrInvalidOldPassword
			}
		case FieldNewPassword:
			if !IsSHA512(c.NewPassword) {
				return ErrInvalidNewPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAccount checks a new user or admin. Display names are optional,
// so FieldName is only checked when asked for.
func (v *AccountValidator) validateAccount(name, email, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if name == "" {
				return ErrInvalidName
			}
		case FieldEmail:
			if email == "" {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !IsSHA512(password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateBox(box models.Box, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPlacement, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if box.Name == "" {
				return ErrInvalidName
			}
		case FieldPlacement:
			if box.Placement == "" {
				return ErrInvalidPlacement
			}
		case FieldSize:
			if box.Size < MinBoxSize || box.Size > MaxBoxSize {
				return ErrInvalidBoxSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
