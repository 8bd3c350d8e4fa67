// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the box keeper HTTP API.
//
// [ServerAdapter] hides request shapes and status codes from the boxctl
// command line. Non-2xx answers are mapped by mapHTTPError to the sentinel
// errors in errors.go, wrapped with the message the server sent, so callers
// use [errors.Is] (e.g. [ErrConflict] for 409, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-box-keeper/models"
)

// ServerAdapter calls the box keeper server. Operations that need the admin
// gate take the admin login as their first argument after ctx.
type ServerAdapter interface {
	// Unassign frees slot index of the box selected by key and returns the
	// server message.
	Unassign(ctx context.Context, login models.Credentials, key models.BoxKey, index int) (string, error)

	// Assign puts the user with userEmail into slot index of the box.
	Assign(ctx context.Context, login models.Credentials, key models.BoxKey, index int, userEmail string) (string, error)

	// NewBox creates a box with size free slots.
	NewBox(ctx context.Context, login models.Credentials, name, placement string, size int) (models.Box, error)

	// GetBox fetches a box by id or, when key.ID is empty, by name.
	GetBox(ctx context.Context, key models.BoxKey) (models.Box, error)

	// NewUser and NewAdmin register accounts on behalf of an admin.
	NewUser(ctx context.Context, login models.Credentials, name string, account models.Credentials) (string, error)
	NewAdmin(ctx context.Context, login models.Credentials, name string, account models.Credentials) (string, error)

	// Login checks user credentials and returns the accumulated time of use
	// in milliseconds.
	Login(ctx context.Context, credentials models.Credentials) (int64, error)

	ChangePassword(ctx context.Context, change models.PasswordChange) (string, error)
	ChangeAdminPassword(ctx context.Context, change models.PasswordChange) (string, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
