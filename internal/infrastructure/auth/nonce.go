// Package auth implements the anti-forgery token oracle as time-windowed
// HMAC nonces tied to an action scope and a client session.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/relations-core/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Nonce issues and checks scope-bound tokens. A token is the truncated HMAC
// of (window, scope, session); it verifies during the window it was minted
// in and the one after, so a form stays submittable for at least half the
// configured TTL.
type Nonce struct {
	secret []byte
	window time.Duration
}

// NewNonce creates a new Nonce authorizer from config.
func NewNonce(cfg config.AuthConfig) (*Nonce, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("auth secret is required (set RELATIONS_AUTH_SECRET)")
	}
	ttl := time.Duration(cfg.TokenTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Nonce{
		secret: []byte(cfg.Secret),
		window: ttl / 2,
	}, nil
}

// NewSession mints an opaque session identifier for a new client.
func NewSession() string {
	return uuid.New().String()
}

// Issue mints a token for the given scope and session.
func (n *Nonce) Issue(scope, session string) string {
	return n.tokenAt(n.currentWindow(), scope, session)
}

// Check reports whether token is valid for the given scope and session.
// Tokens from the current and the previous window are accepted.
func (n *Nonce) Check(token, scope, session string) bool {
	if token == "" {
		return false
	}
	current := n.currentWindow()
	for _, w := range []int64{current, current - 1} {
		expected := n.tokenAt(w, scope, session)
		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1 {
			return true
		}
	}
	return false
}

func (n *Nonce) currentWindow() int64 {
	return timeNow().UnixNano() / int64(n.window)
}

func (n *Nonce) tokenAt(window int64, scope, session string) string {
	mac := hmac.New(sha256.New, n.secret)
	fmt.Fprintf(mac, "%d|%s|%s", window, scope, session)
	return hex.EncodeToString(mac.Sum(nil))[:16]
}
