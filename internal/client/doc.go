// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It authenticates against the API, requests a generation for the prompt
// and prints the result.
package client
