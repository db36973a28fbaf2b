package middleware

import (
	"strings"

	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/auth"
	"stockpulse_backend/internal/logger"
	"stockpulse_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// CurrentUser is the identity attached to an authenticated request. It is
// built from the freshly loaded user row, not from token claims, so
// verification and premium flags are never stale.
type CurrentUser struct {
	ID         string
	Email      string
	IsVerified bool
	IsPremium  bool
}

// currentUserKey is the single gin context key the identity lives under.
// Handlers go through UserFromContext instead of touching it directly.
const currentUserKey = "stockpulse.currentUser"

// UserFromContext returns the authenticated identity, if any.
func UserFromContext(c *gin.Context) (*CurrentUser, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*CurrentUser)
	return user, ok
}

// RequireAuth gates a route on a valid access token. The pipeline is:
// extract bearer token, validate signature/expiry/type, re-fetch the
// user, attach identity. Each failure maps to a distinct stable code.
func RequireAuth(issuer *auth.TokenIssuer, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, appErr := resolveIdentity(c, issuer, userRepo)
		if appErr != nil {
			appErrors.HandleError(c, appErr)
			return
		}
		if user == nil {
			appErrors.HandleError(c, appErrors.ErrMissingToken)
			return
		}

		c.Set(currentUserKey, user)
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuth resolves identity when a bearer token is present but lets
// anonymous requests through. A present-but-broken token still fails.
func OptionalAuth(issuer *auth.TokenIssuer, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, appErr := resolveIdentity(c, issuer, userRepo)
		if appErr != nil {
			appErrors.HandleError(c, appErr)
			return
		}
		if user != nil {
			c.Set(currentUserKey, user)
			ctx := logger.WithUserID(c.Request.Context(), user.ID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// RequireVerified composes after RequireAuth and rejects unverified
// accounts.
func RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			appErrors.HandleError(c, appErrors.ErrAuthRequired)
			return
		}
		if !user.IsVerified {
			appErrors.HandleError(c, appErrors.ErrVerificationRequired)
			return
		}
		c.Next()
	}
}

// RequirePremium composes after RequireAuth and rejects non-premium
// accounts.
func RequirePremium() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			appErrors.HandleError(c, appErrors.ErrAuthRequired)
			return
		}
		if !user.IsPremium {
			appErrors.HandleError(c, appErrors.ErrPremiumRequired)
			return
		}
		c.Next()
	}
}

// resolveIdentity runs the token pipeline. It returns (nil, nil) when no
// Authorization header is present, leaving the required/optional decision
// to the caller.
func resolveIdentity(c *gin.Context, issuer *auth.TokenIssuer, userRepo repositories.UserRepository) (*CurrentUser, *appErrors.AppError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, appErrors.ErrMissingToken
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := issuer.Verify(tokenStr, auth.TokenTypeAccess)
	if err != nil {
		switch {
		case appErrors.Is(err, auth.ErrTokenWrongType):
			return nil, appErrors.ErrInvalidTokenType
		case appErrors.Is(err, auth.ErrTokenExpired):
			return nil, appErrors.ErrTokenExpired
		default:
			return nil, appErrors.ErrInvalidToken
		}
	}

	// Re-fetch the user so stale tokens for deleted accounts fail here.
	user, err := userRepo.FindByID(claims.UserID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.AuthInternalError(err)
	}

	return &CurrentUser{
		ID:         user.ID,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		IsPremium:  user.IsPremium,
	}, nil
}
