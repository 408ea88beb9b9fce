// Package auth provides Medicamenta API authentication.
package auth

import "net/http"

// Credentials holds Medicamenta API authentication credentials.
// Exactly one of APIKey or AccessToken is expected to be set.
type Credentials struct {
	APIKey      string
	AccessToken string
}

// Apply adds the authentication header to an HTTP request.
func (c *Credentials) Apply(req *http.Request) {
	if c == nil {
		return
	}
	switch {
	case c.APIKey != "":
		req.Header.Set("X-API-Key", c.APIKey)
	case c.AccessToken != "":
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}
}

// Valid reports whether exactly one credential kind is configured.
func (c *Credentials) Valid() bool {
	if c == nil {
		return false
	}
	return (c.APIKey != "") != (c.AccessToken != "")
}
