package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "inkwell-api"
	tokenAudience = "inkwell-client"
)

// Typed verification failures. Verify never returns a raw jwt error.
var (
	// ErrTokenMalformed covers anything that cannot be parsed or whose
	// signature does not verify.
	ErrTokenMalformed = errors.New("token malformed or signature invalid")
	// ErrTokenExpired is returned when an expiry claim is present and elapsed.
	ErrTokenExpired = errors.New("token expired")
)

// TokenService issues and verifies signed session tokens carrying a user
// identity claim. The signing key comes from configuration; a zero TTL
// issues tokens without an expiry claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a TokenService signing with secret. ttl sets the
// expiry claim on issued tokens; ttl == 0 disables expiry.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed HS256 token binding the given user identity.
func (t *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}
	if t.ttl > 0 {
		claims["exp"] = now.Add(t.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify parses and validates a token and returns the user identity it
// binds. Verification is pure: no storage access, no side effects. The user
// the token refers to is validated lazily by whoever loads the record.
func (t *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return t.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrTokenMalformed
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrTokenMalformed
	}

	return uint(userID), nil
}
