package services

import (
	"strings"
	"sync"
	"time"

	"stockpulse_backend/internal/email"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/repositories"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository so service tests run
// without postgres.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == strings.ToLower(emailAddr) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByGoogleID(googleID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.GoogleID != "" && user.GoogleID == googleID {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token == "" {
		return nil, repositories.ErrUserNotFound
	}
	for _, user := range r.users {
		if user.VerificationToken == token {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token == "" {
		return nil, repositories.ErrUserNotFound
	}
	for _, user := range r.users {
		if user.ResetToken == token {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	user.Email = strings.ToLower(user.Email)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

// recordingEmailProvider captures outbound mail for assertions.
type recordingEmailProvider struct {
	mu            sync.Mutex
	verifications []string
	resets        []string
}

func (p *recordingEmailProvider) Send(e *email.Email) error { return nil }

func (p *recordingEmailProvider) SendVerification(to, verifyURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verifications = append(p.verifications, to)
	return nil
}

func (p *recordingEmailProvider) SendPasswordReset(to, resetURL string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resets = append(p.resets, to)
	return nil
}

func (p *recordingEmailProvider) Close() error { return nil }

func (p *recordingEmailProvider) verificationCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.verifications)
}

func (p *recordingEmailProvider) resetCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.resets)
}
