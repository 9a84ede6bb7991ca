package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) EnsureUserExists(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockAuthUsecase) AssignRole(ctx context.Context, actor domain.Actor, userID, role string) error {
	return m.Called(ctx, actor, userID, role).Error(0)
}
func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

const testSecret = "test-secret"

func signHS256(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func echoActor(c *gin.Context) {
	a := Actor(c)
	c.JSON(http.StatusOK, gin.H{"user_id": a.UserID, "role": a.Role})
}

func TestRequiredAuth(t *testing.T) {
	authUC := new(mockAuthUsecase)
	authUC.On("EnsureUserExists", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == "sub-1" && u.Email == "a@b.com"
	})).Return(&domain.User{ID: "sub-1", Email: "a@b.com", Role: domain.RoleEmployer}, nil)

	r := gin.New()
	r.GET("/me", NewAuthenticator(nil, testSecret, authUC).Required(), echoActor)

	t.Run("valid bearer token", func(t *testing.T) {
		token := signHS256(t, jwt.MapClaims{
			"sub": "sub-1", "email": "a@b.com", "role": "admin",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "sub-1", body["user_id"])
		// Role claim in the token is ignored.
		assert.Equal(t, domain.RoleEmployer, body["role"])
	})

	t.Run("cookie token", func(t *testing.T) {
		token := signHS256(t, jwt.MapClaims{"sub": "sub-1", "email": "a@b.com", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signHS256(t, jwt.MapClaims{"sub": "sub-1", "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without expiry", func(t *testing.T) {
		token := signHS256(t, jwt.MapClaims{"sub": "sub-1"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthContinuesAnonymously(t *testing.T) {
	authUC := new(mockAuthUsecase)
	authUC.On("EnsureUserExists", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	r := gin.New()
	r.GET("/jobs", NewAuthenticator(nil, testSecret, authUC).Optional(), echoActor)

	token := signHS256(t, jwt.MapClaims{"sub": "sub-1", "exp": time.Now().Add(time.Hour).Unix()})
	for _, header := range []string{"", "Bearer garbage", "Bearer " + token} {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, header)
		assert.JSONEq(t, `{"user_id":"","role":""}`, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	handler := func(role string) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			c.Set(string(domain.KeyUserRole), role)
			c.Next()
		}, RequireRole(domain.RoleEmployer), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w
	}

	assert.Equal(t, http.StatusNoContent, handler(domain.RoleEmployer).Code)
	assert.Equal(t, http.StatusNoContent, handler(domain.RoleAdmin).Code)
	assert.Equal(t, http.StatusForbidden, handler(domain.RoleEmployee).Code)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperror.Conflict("Job already saved")) })
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(domain.ErrNotFound) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("pq: password authentication failed")) })

	cases := []struct {
		path    string
		code    int
		message string
	}{
		{"/app", http.StatusConflict, "Job already saved"},
		{"/missing", http.StatusNotFound, "Resource not found"},
		{"/boom", http.StatusInternalServerError, "An unexpected error occurred. Please try again later."},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

		assert.Equal(t, tc.code, w.Code)
		var body struct {
			Success   bool   `json:"success"`
			Message   string `json:"message"`
			RequestID string `json:"request_id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, tc.message, body.Message)
		assert.Equal(t, w.Header().Get(RequestIDHeader), body.RequestID)
	}
}

func TestErrorHandlerListsValidationFailures(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
	}
	verr := validation.New().Struct(form{})

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		_ = c.Error(apperror.New(http.StatusBadRequest, "Invalid value for field 'Name' (required)", verr))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error []string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Name: is required"}, body.Error)
}

func TestRequestIDReusesValidInbound(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(string(domain.KeyRequestID))) })

	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, inbound)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, inbound, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://jobs.example.com/"}, true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://jobs.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://jobs.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("http://localhost:3000")
	assert.Equal(t, http.StatusForbidden, w.Code, "dev origins are closed in production")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitInMemoryFallback(t *testing.T) {
	cfg := GlobalRateLimitConfig(2, time.Minute)
	cfg.Client = func() *goredis.Client { return nil }

	r := gin.New()
	r.Use(RateLimitMiddleware(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestChainRateLimitKeysOnUser(t *testing.T) {
	cfg := ChainRateLimitConfig(1, time.Minute)
	cfg.Client = func() *goredis.Client { return nil }

	r := gin.New()
	r.POST("/tx", func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), c.GetHeader("X-User"))
		c.Next()
	}, RateLimitMiddleware(cfg), func(c *gin.Context) { c.Status(http.StatusAccepted) })

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/tx", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusAccepted, send("alice"))
	assert.Equal(t, http.StatusTooManyRequests, send("alice"))
	assert.Equal(t, http.StatusAccepted, send("bob"))
}
