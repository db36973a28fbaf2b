package services

import (
	"fmt"
	"strings"
	"time"

	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/auth"
	"stockpulse_backend/internal/email"
	"stockpulse_backend/internal/logger"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/oauth"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services/dto"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.TokenPairResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenPairResponse, error)
	Logout(userID string) error
	RefreshAccessToken(refreshToken string) (*dto.TokenPairResponse, error)
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error
	VerifyEmail(token string) error
	ResendVerificationEmail(email string) error
	ChangePassword(userID, currentPassword, newPassword string) error
	GenerateTokens(user *models.User) (*dto.TokenPairResponse, error)
	LoginWithGoogle(profile *oauth.Profile) (*dto.TokenPairResponse, error)
}

// AuthConfig carries the auth policy knobs the service needs.
type AuthConfig struct {
	ResetTokenTTL  time.Duration
	VerifyTokenTTL time.Duration
	// FrontendURL is the base for verification/reset links.
	FrontendURL string
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	issuer        *auth.TokenIssuer
	hasher        *auth.PasswordHasher
	emailProvider email.Provider
	cfg           AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepository,
	issuer *auth.TokenIssuer,
	hasher *auth.PasswordHasher,
	emailProvider email.Provider,
	cfg AuthConfig,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		issuer:        issuer,
		hasher:        hasher,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

// Register creates a new unverified account and issues a token pair.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ValidationError(err.Error())
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	verificationToken, err := auth.GenerateRandomToken()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	verificationExp := time.Now().Add(s.cfg.VerifyTokenTTL)

	user := &models.User{
		Email:                strings.ToLower(req.Email),
		FullName:             req.FullName,
		PasswordHash:         hashedPassword,
		IsVerified:           false,
		VerificationToken:    verificationToken,
		VerificationTokenExp: &verificationExp,
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailTaken
		}
		return nil, appErrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return s.GenerateTokens(user)
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	// OAuth-only accounts have no local password; same generic failure.
	if !user.HasPassword() || !s.hasher.Check(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	return s.GenerateTokens(user)
}

// Logout is best-effort bookkeeping. Tokens are stateless, so the server
// cannot invalidate an already-issued pair; clients discard them.
func (s *AuthServiceImpl) Logout(userID string) error {
	logger.Info("user logged out", "user_id", userID)
	return nil
}

// RefreshAccessToken exchanges a refresh token for a fresh pair. The user
// is re-fetched so a deleted account cannot keep refreshing, and the
// refresh token is rotated.
func (s *AuthServiceImpl) RefreshAccessToken(refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.issuer.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		switch {
		case appErrors.Is(err, auth.ErrTokenExpired):
			return nil, appErrors.ErrTokenExpired
		default:
			return nil, appErrors.ErrInvalidToken
		}
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	return s.GenerateTokens(user)
}

// RequestPasswordReset always reports success to the caller; whether the
// email exists must not be observable.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return appErrors.InternalError(err)
	}

	resetToken, err := auth.GenerateRandomToken()
	if err != nil {
		return appErrors.InternalError(err)
	}
	resetExp := time.Now().Add(s.cfg.ResetTokenTTL)

	user.ResetToken = resetToken
	user.ResetTokenExp = &resetExp
	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)
	return nil
}

// ResetPassword consumes a reset token. Clearing the token in the same
// update that stores the new hash makes it single use: a second
// presentation finds no matching row.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return appErrors.ErrInvalidResetToken
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return appErrors.ErrInvalidResetToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return appErrors.ValidationError(err.Error())
	}

	hashedPassword, err := s.hasher.Hash(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// VerifyEmail consumes a verification token and marks the account
// verified.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return appErrors.ErrInvalidVerifyToken
	}

	if user.VerificationTokenExp == nil || time.Now().After(*user.VerificationTokenExp) {
		return appErrors.ErrInvalidVerifyToken
	}

	user.IsVerified = true
	user.VerificationToken = ""
	user.VerificationTokenExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// ResendVerificationEmail issues a fresh verification token, superseding
// any previous one. Unknown emails are silently accepted.
func (s *AuthServiceImpl) ResendVerificationEmail(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return appErrors.InternalError(err)
	}

	if user.IsVerified {
		return appErrors.ErrAlreadyVerified
	}

	verificationToken, err := auth.GenerateRandomToken()
	if err != nil {
		return appErrors.InternalError(err)
	}
	verificationExp := time.Now().Add(s.cfg.VerifyTokenTTL)

	user.VerificationToken = verificationToken
	user.VerificationTokenExp = &verificationExp
	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)
	return nil
}

// ChangePassword requires re-verification of the current password.
func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if !user.HasPassword() || !s.hasher.Check(currentPassword, user.PasswordHash) {
		return appErrors.ErrInvalidCurrentPassword
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return appErrors.ValidationError(err.Error())
	}

	hashedPassword, err := s.hasher.Hash(newPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// GenerateTokens issues a token pair for an already-authenticated user.
// The OAuth callback uses it directly after the provider has confirmed
// identity.
func (s *AuthServiceImpl) GenerateTokens(user *models.User) (*dto.TokenPairResponse, error) {
	accessToken, refreshToken, err := s.issuer.IssuePair(user)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         BuildUserResponse(user),
	}, nil
}

// BuildUserResponse maps a user row onto the API shape.
func BuildUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		IsVerified: user.IsVerified,
		IsPremium:  user.IsPremium,
		CreatedAt:  user.CreatedAt,
	}
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.FrontendURL, token)
	go func() {
		if err := s.emailProvider.SendVerification(to, verifyURL); err != nil {
			logger.WithError(err).Warn("failed to send verification email", "to", to)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, token)
	go func() {
		if err := s.emailProvider.SendPasswordReset(to, resetURL); err != nil {
			logger.WithError(err).Warn("failed to send password reset email", "to", to)
		}
	}()
}
