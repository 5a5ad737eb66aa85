package token

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/6394981696/Lecture-Scheduling/config"
)

var (
	ErrTokenExpired = errors.New("session token expired")
	ErrTokenInvalid = errors.New("session token invalid")
)

// Claims are the custom JWT claims carried by the session cookie.
// The cookie never carries the Principal itself, only the opaque
// session ID used to look it up server-side.
type Claims struct {
	SessionID string `json:"session_id"`
	jwtv5.RegisteredClaims
}

// Manager signs and verifies session cookie tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token Manager from the session configuration.
func NewManager(cfg *config.SessionConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Issue signs a token wrapping the given session ID.
func (m *Manager) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "lecture-scheduling",
		},
	}

	tok := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Parse verifies a token and returns the session ID it carries.
func (m *Manager) Parse(tokenStr string) (string, error) {
	tok, err := jwtv5.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.SessionID == "" {
		return "", ErrTokenInvalid
	}

	return claims.SessionID, nil
}
