// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-box-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	upperDigest = strings.Repeat("EE26B0DD", 16)
	lowerDigest = strings.Repeat("ab12cd34", 16)
)

func TestIsSHA512(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "upper case", input: upperDigest, want: true},
		{name: "lower case", input: lowerDigest, want: true},
		{name: "too short", input: upperDigest[:127], want: false},
		{name: "too long", input: upperDigest + "A", want: false},
		{name: "non hex", input: strings.Repeat("Z", 128), want: false},
		{name: "empty", input: "", want: false},
		{name: "plain text", input: "badPassword", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSHA512(tt.input))
		})
	}
}

func TestNewAccountValidator(t *testing.T) {
	require.NotNil(t, NewAccountValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewAccountValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		obj    any
		fields []string
		want   error
	}{
		{name: "valid", obj: models.Credentials{Email: "a@b.c", Password: upperDigest}},
		{name: "valid pointer", obj: &models.Credentials{Email: "a@b.c", Password: lowerDigest}},
		{name: "empty email", obj: models.Credentials{Password: upperDigest}, want: ErrInvalidEmail},
		{name: "bad password", obj: models.Credentials{Email: "a@b.c", Password: "bad"}, want: ErrInvalidPassword},
		{name: "email checked first", obj: models.Credentials{}, want: ErrInvalidEmail},
		{name: "scoped to email", obj: models.Credentials{Email: "a@b.c", Password: "bad"}, fields: []string{FieldEmail}},
		{name: "unknown field", obj: models.Credentials{}, fields: []string{FieldSize}, want: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_PasswordChange(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	valid := models.PasswordChange{Email: "a@b.c", OldPassword: upperDigest, NewPassword: lowerDigest}
	require.NoError(t, v.Validate(ctx, valid))

	badOld := valid
	badOld.OldPassword = "old"
	assert.ErrorIs(t, v.Validate(ctx, badOld), ErrInvalidOldPassword)

	badNew := valid
	badNew.NewPassword = "new"
	assert.ErrorIs(t, v.Validate(ctx, &badNew), ErrInvalidNewPassword)
	assert.NoError(t, v.Validate(ctx, badNew, FieldEmail, FieldOldPassword), "new password is not checked when out of scope")
}

func TestValidate_Accounts(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Email: "u@b.c", Password: upperDigest}), "name is optional")
	assert.ErrorIs(t, v.Validate(ctx, models.User{Email: "u@b.c", Password: upperDigest}, FieldName), ErrInvalidName)
	assert.ErrorIs(t, v.Validate(ctx, &models.User{Password: upperDigest}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Admin{Email: "a@b.c", Password: "badPassword"}), ErrInvalidPassword)
	assert.NoError(t, v.Validate(ctx, &models.Admin{Name: "Root", Email: "a@b.c", Password: lowerDigest}, FieldName, FieldEmail, FieldPassword))
}

func TestValidate_Box(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		box  models.Box
		want error
	}{
		{name: "smallest", box: models.Box{Name: "hall", Placement: "floor 1", Size: MinBoxSize}},
		{name: "largest", box: models.Box{Name: "hall", Placement: "floor 1", Size: MaxBoxSize}},
		{name: "zero size", box: models.Box{Name: "hall", Placement: "floor 1", Size: 0}, want: ErrInvalidBoxSize},
		{name: "too large", box: models.Box{Name: "hall", Placement: "floor 1", Size: MaxBoxSize + 1}, want: ErrInvalidBoxSize},
		{name: "no name", box: models.Box{Placement: "floor 1", Size: 3}, want: ErrInvalidName},
		{name: "no placement", box: models.Box{Name: "hall", Size: 3}, want: ErrInvalidPlacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.box)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
