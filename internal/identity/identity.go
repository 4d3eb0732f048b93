// ABOUTME: Identity resolution for calendar authorship records
// ABOUTME: Handles username@source format

package identity

import (
	"os"
	"strings"
)

// GetIdentity returns the identity string for a user.
// If override is provided, uses that as username.
// Otherwise uses $MASTERMIND_USER or $USER environment variable.
func GetIdentity(override, source string) string {
	username := override
	if username == "" {
		username = os.Getenv("MASTERMIND_USER")
	}
	if username == "" {
		username = os.Getenv("USER")
	}
	if username == "" {
		username = "anonymous"
	}
	return username + "@" + source
}

// ParseIdentity splits an identity string into username and source.
func ParseIdentity(id string) (username, source string) {
	parts := strings.SplitN(id, "@", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return id, "unknown"
}
