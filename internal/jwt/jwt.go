package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Error variables
var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrUnexpectedTokenType = errors.New("unexpected token type")
	ErrMissingHeader       = errors.New("authorization header missing")
	ErrInvalidHeader       = errors.New("invalid authorization header format")
)

// Claims are the claims of access and refresh tokens.
type Claims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	secretKey       string        // Secret key for signing tokens
	accessLifetime  time.Duration // Access token lifetime
	refreshLifetime time.Duration // Refresh token lifetime
	now             func() time.Time
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the HS256 signing key.
func WithSecretKey(key string) Option {
	return func(j *JWT) { j.secretKey = key }
}

// WithAccessLifetime sets the access token lifetime.
func WithAccessLifetime(d time.Duration) Option {
	return func(j *JWT) { j.accessLifetime = d }
}

// WithRefreshLifetime sets the refresh token lifetime.
func WithRefreshLifetime(d time.Duration) Option {
	return func(j *JWT) { j.refreshLifetime = d }
}

// New creates a new JWT instance. Access tokens live 5 minutes and refresh
// tokens 200 days unless configured otherwise.
func New(opts ...Option) *JWT {
	j := &JWT{
		accessLifetime:  5 * time.Minute,
		refreshLifetime: 200 * 24 * time.Hour,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GeneratePair creates an access and a refresh token for userID.
func (j *JWT) GeneratePair(ctx context.Context, userID int64) (access, refresh string, err error) {
	access, err = j.sign(userID, TokenTypeAccess, j.accessLifetime)
	if err != nil {
		return "", "", err
	}
	refresh, err = j.sign(userID, TokenTypeRefresh, j.refreshLifetime)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccess creates an access token for userID.
func (j *JWT) GenerateAccess(ctx context.Context, userID int64) (string, error) {
	return j.sign(userID, TokenTypeAccess, j.accessLifetime)
}

func (j *JWT) sign(userID int64, tokenType string, lifetime time.Duration) (string, error) {
	now := j.now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and validates tokenString regardless of its type.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseAccess returns the claims of a valid access token.
func (j *JWT) ParseAccess(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parseTyped(ctx, tokenString, TokenTypeAccess)
}

// ParseRefresh returns the claims of a valid refresh token.
func (j *JWT) ParseRefresh(ctx context.Context, tokenString string) (*Claims, error) {
	return j.parseTyped(ctx, tokenString, TokenTypeRefresh)
}

func (j *JWT) parseTyped(ctx context.Context, tokenString, tokenType string) (*Claims, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, ErrUnexpectedTokenType
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidHeader
	}

	return parts[1], nil
}
