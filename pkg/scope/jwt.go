package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"voice-task-assistant/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingUser  = errors.New("token has no user")
)

// Claims is the JWT payload carried by identity tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates an HS256 token manager. A zero ttl issues tokens without expiry.
func New(secret string, ttl time.Duration) Manager {
	if secret == "" {
		panic("scope: jwt secret is required")
	}
	return &jwtManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *jwtManager) CreateToken(sc model.Scope) (string, error) {
	if sc.UserID == "" {
		return "", ErrMissingUser
	}

	now := m.now()
	claims := &Claims{
		UserID:   sc.UserID,
		Username: sc.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sc.UserID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *jwtManager) Verify(tokenString string) (model.Scope, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		return model.Scope{}, ErrMissingUser
	}
	return model.Scope{UserID: claims.UserID, Username: claims.Username}, nil
}
