package auth

import (
	"errors"
	"fmt"
	"time"

	"stockpulse_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	// ErrTokenExpired means signature and structure were fine but the
	// token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers bad signatures, wrong algorithms and
	// undecodable tokens.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenWrongType means a valid token of the other type was
	// presented, e.g. a refresh token where an access token is required.
	ErrTokenWrongType = errors.New("wrong token type")
)

// Claims carried by both token types. The type claim is checked on every
// verification, never inferred from context.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	IsPremium  bool      `json:"is_premium"`
	TokenType  TokenType `json:"token_type"`
}

// TokenIssuer creates and validates signed bearer tokens. Access and
// refresh tokens are signed with independent secrets, so compromise of
// one does not compromise the other. Validity is purely a function of
// signature and expiry; nothing is persisted.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Issue signs a token of the given type for the user.
func (i *TokenIssuer) Issue(user *models.User, tokenType TokenType) (string, error) {
	ttl := i.accessTTL
	secret := i.accessSecret
	if tokenType == TokenTypeRefresh {
		ttl = i.refreshTTL
		secret = i.refreshSecret
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:     user.ID,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		IsPremium:  user.IsPremium,
		TokenType:  tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// IssuePair issues an access and a refresh token for the user.
func (i *TokenIssuer) IssuePair(user *models.User) (access string, refresh string, err error) {
	access, err = i.Issue(user, TokenTypeAccess)
	if err != nil {
		return "", "", err
	}
	refresh, err = i.Issue(user, TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Verify parses and validates a token, then checks its type claim
// against expected. The signing key is selected by the token's own type
// claim so that a well-formed token of the wrong type is classified as
// ErrTokenWrongType instead of a signature failure.
func (i *TokenIssuer) Verify(tokenString string, expected TokenType) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		switch claims.TokenType {
		case TokenTypeAccess:
			return i.accessSecret, nil
		case TokenTypeRefresh:
			return i.refreshSecret, nil
		default:
			return nil, ErrTokenMalformed
		}
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	if claims.TokenType != expected {
		return nil, ErrTokenWrongType
	}
	return claims, nil
}
