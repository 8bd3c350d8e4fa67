package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("email must be a non-empty string")
	ErrInvalidPassword    = errors.New("password must be a sha512 hex digest")
	ErrInvalidOldPassword = errors.New("old password must be a sha512 hex digest")
	ErrInvalidNewPassword = errors.New("new password must be a sha512 hex digest")
	ErrInvalidName        = errors.New("name must be a non-empty string")
	ErrInvalidPlacement   = errors.New("placement must be a non-empty string")
	ErrInvalidBoxSize     = errors.New("box size is out of range")
)
