// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Identity is the caller on whose behalf a cart or checkout operation runs.
// Exactly one of CustomerID and SessionToken is set.
type Identity struct {
	CustomerID   *uuid.UUID // Authenticated customer, if signed in.
	SessionToken string     // Anonymous cart session token otherwise.
}

// CustomerIdentity returns the identity of a signed-in customer.
func CustomerIdentity(customerID uuid.UUID) Identity {
	return Identity{CustomerID: &customerID}
}

// SessionIdentity returns the identity of an anonymous session.
func SessionIdentity(token string) Identity {
	return Identity{SessionToken: strings.TrimSpace(token)}
}

// IsCustomer reports whether the identity belongs to a signed-in customer.
func (i Identity) IsCustomer() bool {
	return i.CustomerID != nil && *i.CustomerID != uuid.Nil
}

// IsValid reports whether exactly one of customer and session is present.
func (i Identity) IsValid() bool {
	hasSession := i.SessionToken != ""

	return i.IsCustomer() != hasSession
}

// String renders the identity for logs without exposing the raw session token.
func (i Identity) String() string {
	if i.IsCustomer() {
		return "customer:" + i.CustomerID.String()
	}
	if i.SessionToken == "" {
		return "anonymous"
	}
	if len(i.SessionToken) <= 6 {
		return "session:***"
	}

	return "session:" + i.SessionToken[:6] + "***"
}

// Key returns a stable key for caches and request coalescing.
func (i Identity) Key() string {
	if i.IsCustomer() {
		return "customer:" + i.CustomerID.String()
	}

	return "session:" + i.SessionToken
}
