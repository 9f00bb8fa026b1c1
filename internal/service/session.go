package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const signingKeyBytes = 32

var ErrInvalidSession = errors.New("invalid session")

// sessionClaims is the signed payload of the session-only cookie.
type sessionClaims struct {
	jwt.RegisteredClaims
	PopupShown bool `json:"popup_shown"`
}

type SessionService struct {
	key []byte
	now func() time.Time
}

// NewSessionService uses signingKey, or a random per-process key when it is
// empty (sessions then do not survive a restart).
func NewSessionService(signingKey string, log *logger.Logger) (*SessionService, error) {
	key := []byte(signingKey)
	if len(key) == 0 {
		key = make([]byte, signingKeyBytes)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate session key: %w", err)
		}
		if log != nil {
			log.Warnw("session_ephemeral_key", "hint", "set session.signing_key to keep sessions across restarts")
		}
	}
	return &SessionService{key: key, now: time.Now}, nil
}

// Issue signs st. The token carries no expiry: the cookie is session-scoped.
func (s *SessionService) Issue(st models.SessionState) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
		PopupShown: st.PopupShown,
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns its state.
func (s *SessionService) Parse(token string) (models.SessionState, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return models.SessionState{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return models.SessionState{}, ErrInvalidSession
	}
	return models.SessionState{PopupShown: claims.PopupShown}, nil
}
