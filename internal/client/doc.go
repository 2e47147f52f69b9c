// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

// Package client implements the interactive client application runtime.
//
// It wires configuration, the HTTP server adapter, client services and the
// terminal UI into a single process lifecycle.
package client
