// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"userdeck/cli/internal/tokenstore"
)

// New creates an API implementation against the given base URL, attaching
// credentials from (and persisting new credentials to) the token store.
func New(baseURL string, tokens *tokenstore.Store) API {
	return newHTTP(baseURL, tokens)
}
