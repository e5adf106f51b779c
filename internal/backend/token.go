// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"strings"

	"userdeck/cli/internal/tokenstore"
)

// AuthHeader returns the Authorization header set for the given credential:
// {"Authorization": "Bearer <token>"} when a token is present, or an empty
// set otherwise. It is side-effect-free and usable by any request builder.
func AuthHeader(tok *tokenstore.Token) map[string]string {
	if tok == nil || tok.AccessToken == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + tok.AccessToken}
}

// ParseBearerToken extracts the token from a value like "Bearer <token>",
// case-insensitively. Returns "" when the value is not a bearer credential.
func ParseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 || !strings.EqualFold(v[:6], "bearer") {
		return ""
	}
	return strings.TrimSpace(v[6:])
}
