// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request shape errors detected before any service is called. Each route
// maps them to its own message in its error table.
var (
	// ErrInvalidJSON is returned when the body is not a JSON object.
	ErrInvalidJSON = errors.New("request body is not a JSON object")

	// ErrUnexpectedBody is returned when the body does not have the keys
	// the route expects.
	ErrUnexpectedBody = errors.New("request body has unexpected keys")

	// ErrMalformedLogin is returned when "login" is not an object holding
	// exactly an email and a password string.
	ErrMalformedLogin = errors.New("login object is malformed")

	ErrSlotNumberType = errors.New("numberOfSlot is not an integer")
	ErrBoxIDAndName   = errors.New("both box id and box name are given")
	ErrBoxNameType    = errors.New("box name is not a string")
	ErrBoxIDType      = errors.New("box id is not a string")
	ErrBoxKeyMissing  = errors.New("neither box id nor box name is given")
)
