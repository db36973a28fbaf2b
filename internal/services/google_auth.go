package services

import (
	"strings"

	"stockpulse_backend/internal/appErrors"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/oauth"
	"stockpulse_backend/internal/repositories"
	"stockpulse_backend/internal/services/dto"
)

// LoginWithGoogle finds or creates the account for a Google profile and
// issues a token pair. Identity proof already happened at the provider,
// so no password is involved.
func (s *AuthServiceImpl) LoginWithGoogle(profile *oauth.Profile) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindByGoogleID(profile.ID)
	if err != nil && !appErrors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.InternalError(err)
	}

	if user == nil {
		// Link an existing local account with the same email.
		user, err = s.userRepo.FindByEmail(profile.Email)
		switch {
		case err == nil:
			user.GoogleID = profile.ID
			if profile.VerifiedEmail {
				user.IsVerified = true
			}
			if err := s.userRepo.Update(user); err != nil {
				return nil, appErrors.InternalError(err)
			}
		case appErrors.Is(err, repositories.ErrUserNotFound):
			user = &models.User{
				Email:      strings.ToLower(profile.Email),
				FullName:   profile.Name,
				GoogleID:   profile.ID,
				IsVerified: profile.VerifiedEmail,
			}
			if err := s.userRepo.Create(user); err != nil {
				return nil, appErrors.InternalError(err)
			}
		default:
			return nil, appErrors.InternalError(err)
		}
	}

	return s.GenerateTokens(user)
}
