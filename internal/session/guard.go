// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

// Allow is the route-guard predicate: it reports whether access to a
// protected view is permitted for the given state. Pure, no side effects;
// the navigation layer redirects to the login entry point on denial.
func Allow(st State) bool {
	return st.IsAuthenticated
}
