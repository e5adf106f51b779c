// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It includes functions for masking sensitive information in messages and
// formatting errors for user-friendly display while protecting credentials.
//
// Login credentials and bearer tokens must never appear in anything shown to
// the user or written to a log; every presented error goes through Mask.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword     = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reJSONPassword = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]*)(")`)
	reBearer       = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken        = regexp.MustCompile(`(?i)(token=|access_token"\s*:\s*")([A-Za-z0-9._-]+)`)
	reAPIKey       = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;&]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reJSONPassword.ReplaceAllString(out, "$1***$3")
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Env-like pairs key=VALUE; mask known secret keys
	for _, k := range []string{"USERDECK_TOKEN", "USERDECK_PASSWORD"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
