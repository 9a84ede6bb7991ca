package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/audit"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var errNoToken = errors.New("no bearer token or auth_token cookie")

// Authenticator verifies identity provider tokens and resolves the local user.
type Authenticator struct {
	jwks      *auth.Provider
	jwtSecret string
	authUC    domain.AuthUsecase
}

// NewAuthenticator accepts HS256 tokens signed with jwtSecret and RS256 tokens
// whose key is published in the JWKS; either may be absent.
func NewAuthenticator(jwks *auth.Provider, jwtSecret string, authUC domain.AuthUsecase) *Authenticator {
	return &Authenticator{jwks: jwks, jwtSecret: jwtSecret, authUC: authUC}
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func (a *Authenticator) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if a.jwtSecret == "" {
			return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
		}
		return []byte(a.jwtSecret), nil
	case *jwt.SigningMethodRSA:
		if a.jwks == nil {
			return nil, fmt.Errorf("RS256 token received but no JWKS is configured")
		}
		return a.jwks.KeyFunc(token)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

// authenticate parses the token and returns the provisioned local user.
func (a *Authenticator) authenticate(c *gin.Context) (*domain.User, error) {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := jwt.Parse(tokenString, a.keyFunc, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" {
		return nil, errors.New("token has no subject")
	}

	// The role always comes from the database; token role claims are ignored.
	return a.authUC.EnsureUserExists(c.Request.Context(), &domain.User{ID: sub, Email: email})
}

func setUser(c *gin.Context, user *domain.User) {
	c.Set(string(domain.KeyUserID), user.ID)
	c.Set(string(domain.KeyUserEmail), user.Email)
	c.Set(string(domain.KeyUserRole), user.Role)
}

// Required rejects requests without a valid token.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.authenticate(c)
		if err != nil {
			logger.Log.Info("token lookup failed", "error", err, "path", c.FullPath())
			if !errors.Is(err, errNoToken) {
				audit.Default().Log(c.Request.Context(), audit.Event{
					Event:     audit.EventUnauthorizedAccess,
					IP:        c.ClientIP(),
					RequestID: c.GetString(string(domain.KeyRequestID)),
					Details:   map[string]interface{}{"path": c.FullPath()},
				})
			}
			response.Error(c, http.StatusUnauthorized, "Invalid or missing token", nil)
			c.Abort()
			return
		}
		setUser(c, user)
		c.Next()
	}
}

// Optional resolves the user when a valid token is present. Failed lookups
// are logged and the request continues anonymously.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.authenticate(c)
		if err != nil {
			if !errors.Is(err, errNoToken) {
				logger.Log.Info("optional auth ignored token", "error", err, "path", c.FullPath())
			}
			c.Next()
			return
		}
		setUser(c, user)
		c.Next()
	}
}

// RequireRole allows the listed roles; admins always pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := domain.Actor{Role: c.GetString(string(domain.KeyUserRole))}
		if !actor.HasRole(roles...) {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated caller; UserID is empty for anonymous requests.
func Actor(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID:    c.GetString(string(domain.KeyUserID)),
		Role:      c.GetString(string(domain.KeyUserRole)),
		RequestID: c.GetString(string(domain.KeyRequestID)),
	}
}
