package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockpulse_backend/internal/auth"
	"stockpulse_backend/internal/models"
	"stockpulse_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo serves a fixed set of users by ID. The remaining lookups
// are unused by the middleware and always miss.
type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByGoogleID(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByVerificationToken(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetToken(string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) Create(*models.User) error { return nil }
func (r *stubUserRepo) Update(*models.User) error { return nil }
func (r *stubUserRepo) Delete(string) error       { return nil }

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func newTestRouter(issuer *auth.TokenIssuer, repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", RequireAuth(issuer, repo), func(c *gin.Context) {
		user, _ := UserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	r.GET("/verified", RequireAuth(issuer, repo), RequireVerified(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/premium", RequireAuth(issuer, repo), RequirePremium(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/optional", OptionalAuth(issuer, repo), func(c *gin.Context) {
		if user, ok := UserFromContext(c); ok {
			c.JSON(http.StatusOK, gin.H{"email": user.Email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": ""})
	})
	// Misconfigured route: gate without RequireAuth in front.
	r.GET("/bare-verified", RequireVerified(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequireAuth_ErrorClassification(t *testing.T) {
	t.Parallel()

	user := &models.User{Email: "a@b.com", IsVerified: true}
	user.ID = "user-1"
	repo := &stubUserRepo{users: map[string]*models.User{"user-1": user}}

	issuer := auth.NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	expiredIssuer := auth.NewTokenIssuer("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	r := newTestRouter(issuer, repo)

	accessToken, err := issuer.Issue(user, auth.TokenTypeAccess)
	require.NoError(t, err)
	refreshToken, err := issuer.Issue(user, auth.TokenTypeRefresh)
	require.NoError(t, err)
	expiredToken, err := expiredIssuer.Issue(user, auth.TokenTypeAccess)
	require.NoError(t, err)

	ghost := &models.User{Email: "ghost@b.com"}
	ghost.ID = "missing"
	ghostToken, err := issuer.Issue(ghost, auth.TokenTypeAccess)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{"no header", "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"refresh token on access route", "Bearer " + refreshToken, http.StatusUnauthorized, "INVALID_TOKEN_TYPE"},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"deleted user", "Bearer " + ghostToken, http.StatusUnauthorized, "USER_NOT_FOUND"},
		{"valid token", "Bearer " + accessToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := doGet(r, "/protected", tt.authHeader)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
			}
		})
	}
}

func TestRequireAuth_AttachesFreshIdentity(t *testing.T) {
	t.Parallel()

	user := &models.User{Email: "a@b.com", IsVerified: false}
	user.ID = "user-1"
	repo := &stubUserRepo{users: map[string]*models.User{"user-1": user}}

	issuer := auth.NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	r := newTestRouter(issuer, repo)

	token, err := issuer.Issue(user, auth.TokenTypeAccess)
	require.NoError(t, err)

	// The token says unverified, but the row has been verified since.
	// The middleware trusts the row.
	user.IsVerified = true

	w := doGet(r, "/verified", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireVerified_RejectsUnverified(t *testing.T) {
	t.Parallel()

	user := &models.User{Email: "a@b.com", IsVerified: false}
	user.ID = "user-1"
	repo := &stubUserRepo{users: map[string]*models.User{"user-1": user}}

	issuer := auth.NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	r := newTestRouter(issuer, repo)

	token, err := issuer.Issue(user, auth.TokenTypeAccess)
	require.NoError(t, err)

	w := doGet(r, "/verified", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "EMAIL_VERIFICATION_REQUIRED", decodeError(t, w).Code)
}

func TestRequirePremium_RejectsFreeAccounts(t *testing.T) {
	t.Parallel()

	free := &models.User{Email: "free@b.com", IsVerified: true}
	free.ID = "free"
	premium := &models.User{Email: "paid@b.com", IsVerified: true, IsPremium: true}
	premium.ID = "paid"
	repo := &stubUserRepo{users: map[string]*models.User{"free": free, "paid": premium}}

	issuer := auth.NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	r := newTestRouter(issuer, repo)

	freeToken, err := issuer.Issue(free, auth.TokenTypeAccess)
	require.NoError(t, err)
	premiumToken, err := issuer.Issue(premium, auth.TokenTypeAccess)
	require.NoError(t, err)

	w := doGet(r, "/premium", "Bearer "+freeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "PREMIUM_REQUIRED", decodeError(t, w).Code)

	w = doGet(r, "/premium", "Bearer "+premiumToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGates_WithoutIdentityReportAuthRequired(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{users: map[string]*models.User{}}
	issuer := auth.NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	r := newTestRouter(issuer, repo)

	w := doGet(r, "/bare-verified", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_REQUIRED", decodeError(t, w).Code)
}

func TestOptionalAuth(t *testing.T) {
	t.Parallel()

	user := &models.User{Email: "a@b.com"}
	user.ID = "user-1"
	repo := &stubUserRepo{users: map[string]*models.User{"user-1": user}}

	issuer := auth.NewTokenIssuer("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	r := newTestRouter(issuer, repo)

	// Anonymous requests pass through.
	w := doGet(r, "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// A present but broken token still fails.
	w = doGet(r, "/optional", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, w).Code)

	// A valid token resolves identity.
	token, err := issuer.Issue(user, auth.TokenTypeAccess)
	require.NoError(t, err)
	w = doGet(r, "/optional", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")
}
