// homefolio - Personal Homepage and Admin Console API
// SPDX-License-Identifier: MIT

package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single operator account. The configured plaintext
// password is bcrypt-hashed once at startup so the comparison path never
// touches the plaintext again.
type Credentials struct {
	username     string
	passwordHash []byte
	enabled      bool
}

// NewCredentials hashes the configured password. An empty username or
// password disables login entirely rather than allowing an empty match.
func NewCredentials(username, password string) (*Credentials, error) {
	if username == "" || password == "" {
		return &Credentials{enabled: false}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Credentials{
		username:     username,
		passwordHash: hash,
		enabled:      true,
	}, nil
}

// Enabled reports whether an operator account is configured.
func (c *Credentials) Enabled() bool {
	return c.enabled
}

// Verify checks a username/password pair. Both the username comparison and
// the bcrypt comparison always run so timing does not reveal which part
// failed.
func (c *Credentials) Verify(username, password string) bool {
	if !c.enabled {
		return false
	}
	usernameMatch := subtle.ConstantTimeCompare([]byte(c.username), []byte(username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}
