// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements boxctl, the command line front end of the box
// keeper API.
//
// Each command parses its own flag set and makes one call through
// [adapter.ServerAdapter]. Plain passwords given on the command line are
// turned into the sha512 digests the server expects.
package client
