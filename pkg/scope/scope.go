// Package scope verifies the bearer tokens issued by the account provider.
package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingUser  = errors.New("token has no subject")
)

// Payload is the identity carried by a token.
type Payload struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	Issue(p Payload, ttl time.Duration) (string, error)
}

// Config holds the shared secret and the expected issuer and audience.
// Empty issuer or audience disables the corresponding check.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  string
}

type manager struct {
	secret []byte
	cfg    Config
	now    func() time.Time
}

// New creates a Manager. The secret must not be empty.
func New(cfg Config) (Manager, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("scope: secret key is required")
	}
	return &manager{secret: []byte(cfg.SecretKey), cfg: cfg, now: time.Now}, nil
}

func (m *manager) Verify(token string) (Payload, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.cfg.Issuer))
	}
	if m.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(m.cfg.Audience))
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Subject == "" {
		return Payload{}, ErrMissingUser
	}

	return Payload{UserID: c.Subject, Email: c.Email, Role: c.Role}, nil
}

func (m *manager) Issue(p Payload, ttl time.Duration) (string, error) {
	now := m.now()
	c := claims{
		Email: p.Email,
		Role:  p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    m.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if m.cfg.Audience != "" {
		c.Audience = jwt.ClaimStrings{m.cfg.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}
