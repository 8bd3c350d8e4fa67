// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-box-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns  = []string{"id", "email", "name", "password", "time_of_use", "created_at"}
	adminColumns = []string{"id", "name", "email", "password", "created_at"}
	boxColumns   = []string{"id", "name", "placement", "size", "slots", "version", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	var timeOfUse int64
	if user.TimeOfUse != nil {
		timeOfUse = *user.TimeOfUse
	}

	query, args, err := psql.
		Insert("users").
		Columns("id", "email", "name", "password", "time_of_use").
		Values(user.UserID, user.Email, user.Name, user.Password, timeOfUse).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateUserPasswordQuery(userID, password string) (string, []any, error) {
	query, args, err := psql.
		Update("users").
		Set("password", password).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreditUserQuery sets the new time of use only if nobody credited the
// user since priorTimeOfUse was read.
func buildCreditUserQuery(userID string, priorTimeOfUse, timeOfUse int64) (string, []any, error) {
	query, args, err := psql.
		Update("users").
		Set("time_of_use", timeOfUse).
		Where(sq.And{
			sq.Eq{"id": userID},
			sq.Eq{"time_of_use": priorTimeOfUse},
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// ── admins ────────────────────────────────────────────────────────────────────

func buildInsertAdminQuery(admin models.Admin) (string, []any, error) {
	query, args, err := psql.
		Insert("admins").
		Columns("id", "name", "email", "password").
		Values(admin.AdminID, admin.Name, admin.Email, admin.Password).
		Suffix(returning(adminColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAdminByEmailQuery(email string) (string, []any, error) {
	query, args, err := psql.
		Select(adminColumns...).
		From("admins").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateAdminPasswordQuery(adminID, password string) (string, []any, error) {
	query, args, err := psql.
		Update("admins").
		Set("password", password).
		Where(sq.Eq{"id": adminID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// ── boxes ─────────────────────────────────────────────────────────────────────

// encodeSlots renders the slot sequence as the text of a JSONB value.
func encodeSlots(slots []models.Slot) (string, error) {
	if slots == nil {
		slots = []models.Slot{}
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingSlots, err)
	}

	return string(data), nil
}

func buildInsertBoxQuery(box models.Box) (string, []any, error) {
	slots, err := encodeSlots(box.Slots)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Insert("boxes").
		Columns("id", "name", "placement", "size", "slots").
		Values(box.BoxID, box.Name, box.Placement, box.Size, slots).
		Suffix(returning(boxColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectBoxByIDQuery(boxID string) (string, []any, error) {
	query, args, err := psql.
		Select(boxColumns...).
		From("boxes").
		Where(sq.Eq{"id": boxID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectFirstBoxByNameQuery picks the oldest box with the name; the id
// breaks ties so the choice is stable.
func buildSelectFirstBoxByNameQuery(name string) (string, []any, error) {
	query, args, err := psql.
		Select(boxColumns...).
		From("boxes").
		Where(sq.Eq{"name": name}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateBoxSlotsQuery rewrites the slot document when the version
// still matches and returns the bumped version.
func buildUpdateBoxSlotsQuery(boxID string, expectedVersion int64, slots []models.Slot) (string, []any, error) {
	encoded, err := encodeSlots(slots)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Update("boxes").
		Set("slots", encoded).
		Set("version", sq.Expr("version + 1")).
		Where(sq.And{
			sq.Eq{"id": boxID},
			sq.Eq{"version": expectedVersion},
		}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
