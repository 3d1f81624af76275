package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, tampered and expired tokens alike;
// callers never learn which, only that the session is not valid.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the acting identity carried by a session token.
type Claims struct {
	AdminID int64
	Email   string
	Role    string
}

// Tokens signs and verifies admin session tokens. The secret and lifetime
// are fixed at construction instead of read from the environment on every
// call, so tests can run with their own values.
//
// There is no revocation store: a token stays valid until natural expiry,
// even if the admin account is deactivated in the meantime. Known
// limitation, kept on purpose.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Sign issues a bearer token for the given admin identity.
func (t *Tokens) Sign(c Claims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   c.AdminID,
		"email": c.Email,
		"role":  c.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token and returns the embedded claims.
func (t *Tokens) Verify(tokenStr string) (Claims, error) {
	tok, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	var c Claims
	if sub, ok := mapc["sub"].(float64); ok {
		c.AdminID = int64(sub)
	}
	c.Email, _ = mapc["email"].(string)
	c.Role, _ = mapc["role"].(string)
	if c.AdminID == 0 || c.Email == "" {
		return Claims{}, ErrInvalidToken
	}
	return c, nil
}
