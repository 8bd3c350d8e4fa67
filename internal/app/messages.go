// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the box keeper API writes into
// response bodies. Existing clients match on some of them, so the wording
// (including its typos and casing) is part of the API.
package app

// Success messages.
const (
	MsgSlotUnassigned   = "Slot unassigned successfully"
	MsgSlotAssigned     = "Slot assigned successfully"
	MsgBoxCreated       = "Box created successfully"
	MsgLoginSuccessful  = "Login successful"
	MsgPasswordChanged  = "Password changed successfully"
	MsgOperationSuccess = "Operation success"
	MsgAdminCreated     = "Admin created successfully"
	MsgUserCreated      = "User created successfully"
)

// Request shape and type errors.
const (
	MsgInvalidJSON         = "Invalid JSON was passed"
	MsgSpecifyLogin        = "specify login object"
	MsgSlotNumberType      = "numberOfSlot must be a number"
	MsgUseIDOrName         = "Use id OR name. Only one is allowed. Prefer to use id"
	MsgNameType            = "Name must be a string"
	MsgIDType              = "Id must be a string"
	MsgSpecifyBox          = "Specify name or id of the box"
	MsgEmailType           = "Email must be a string"
	MsgPlacementType       = "Placement must be a string"
	MsgBoxSize             = "Size must be a number between 1 and 1000"
	MsgPasswordFormat      = "Password must be in sha512 format"
	MsgOldPasswordFormat   = "OldPassword must be in sha512 format"
	MsgNewPasswordFormat   = "NewPassword must be in sha512 format"
	MsgLoginPasswordFormat = "The password must be in sha512"
)

// Admin gate errors.
const (
	MsgAdminLoginNotFound = "Admin login not found"
	MsgBadLoginPassword   = "bad login password"
)

// Box and slot errors.
const (
	MsgBoxNotFound          = "Box not found"
	MsgBoxBusy              = "Box is busy, retry later"
	MsgBoxModified          = "Box was modified concurrently, retry"
	MsgSlotOutOfRange       = "Slot number is higher than the number of slots"
	MsgSlotNotAllocated     = "Slot required is not allocated"
	MsgSlotAlreadyAllocated = "Slot is already allocated"

	// integrity faults: the stored data is inconsistent
	MsgSlotWithoutDate   = "this slot does not contain date"
	MsgOccupantNotFound  = "user not found"
	MsgOccupantCorrupted = "user in this slot generate an error"
)

// Account errors.
const (
	MsgUserNotFound       = "User not found"
	MsgAdminNotFound      = "Admin not found"
	MsgWrongCredentials   = "Wrong confidentials"
	MsgUserEmailTaken     = "A user with this email already exists"
	MsgAdminEmailTaken    = "An admin with this email already exists"
	MsgServiceUnavailable = "Service unavailable, retry later"
)
