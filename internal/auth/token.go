package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jaehyun-dev/stockfolio-be/internal/models"
)

// ErrInvalidToken marks a token that failed signature, shape, or expiry
// validation.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller as seen by handlers and services.
type Identity struct {
	ID       int64
	Username string
	Roles    []string
	IsAdmin  bool
}

// TokenManager issues and validates signed JWTs for authenticated users.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate issues a signed JWT carrying the user's id, username, and role names.
func (t *TokenManager) Generate(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":      t.issuer,
		"sub":      fmt.Sprintf("%d", user.ID),
		"username": user.Username,
		"roles":    user.Roles,
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates a token string and reconstructs the caller's Identity.
func (t *TokenManager) Parse(tokenString string) (Identity, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: malformed subject %q", ErrInvalidToken, sub)
	}

	identity := Identity{ID: id}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}
	if rawRoles, ok := claims["roles"].([]any); ok {
		for _, raw := range rawRoles {
			role, ok := raw.(string)
			if !ok {
				continue
			}
			identity.Roles = append(identity.Roles, role)
			if role == models.RoleAdmin {
				identity.IsAdmin = true
			}
		}
	}

	return identity, nil
}
