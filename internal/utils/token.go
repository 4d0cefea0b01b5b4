package utils // package utils provides helpers for session tokens, hashing and filenames

import (
	"crypto/rand"  // secure random number generation
	"encoding/hex" // hex encoding for identifiers and filenames
	"errors"       // sentinel error for invalid tokens
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidSessionToken is returned when a session cookie does not
// carry a valid signed token.
var ErrInvalidSessionToken = errors.New("invalid session token")

// NewSessionID returns a random 32 character hex identifier used as the
// Redis key for a session record.
func NewSessionID() (string, error) {
	return randomHex(16)
}

// NewSessionToken builds and signs an HS256 JWT wrapping a session ID.
// The cookie sent to the browser contains only this token; the session
// state itself stays server-side in Redis. The sid claim names the
// session record, exp mirrors the Redis TTL so the cookie and the
// record expire together.
func NewSessionToken(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken validates a session cookie value and extracts the
// session ID. Tokens signed with a different method or secret, expired
// tokens and tokens without a sid claim all fail with
// ErrInvalidSessionToken.
func ParseSessionToken(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidSessionToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSessionToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidSessionToken
	}
	return sid, nil
}

// UploadFilename generates a random name for an uploaded file: 8 random
// bytes hex encoded plus the original extension. Random names make
// concurrent uploads independent and never collide with user input.
func UploadFilename(original string) (string, error) {
	name, err := randomHex(8)
	if err != nil {
		return "", err
	}
	return name + filepath.Ext(original), nil
}

// randomHex returns a hex encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
