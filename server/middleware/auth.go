package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/apibase/auth/identity"
	"github.com/kbukum/apibase/auth/token"
	apperrors "github.com/kbukum/apibase/errors"
	"github.com/kbukum/apibase/logger"
	"github.com/kbukum/apibase/user"
)

// AuthConfig configures the authentication gate.
type AuthConfig struct {
	// Codec decodes bearer tokens.
	Codec *token.Service
	// Directory resolves token subjects to identity records.
	Directory user.Directory
	// ExcludePaths are literal request paths that bypass authentication,
	// compared exactly against the inbound route.
	ExcludePaths []string
}

// Gate holds the authentication decision logic. The decision itself is a
// plain function over the request so the check order is testable without an
// engine in front of it.
type Gate struct {
	cfg      AuthConfig
	excluded map[string]struct{}
	log      *logger.Logger
}

// NewGate creates an authentication gate.
func NewGate(cfg AuthConfig, log *logger.Logger) *Gate {
	excluded := make(map[string]struct{}, len(cfg.ExcludePaths))
	for _, p := range cfg.ExcludePaths {
		excluded[p] = struct{}{}
	}
	return &Gate{cfg: cfg, excluded: excluded, log: log.WithComponent("auth")}
}

// Skip reports whether the request path bypasses authentication.
func (g *Gate) Skip(path string) bool {
	_, ok := g.excluded[path]
	return ok
}

// Authenticate runs the ordered credential checks for a request and returns
// the caller's identity, or the failure that terminates the request. Checks
// short-circuit on the first failure:
//
//  1. missing bearer credential        -> 401 "Not authenticated"
//  2. signature/structure/expiry fail  -> 401 "Invalid credentials"
//  3. empty decoded subject            -> 401 "Invalid token"
//  4. subject unknown to the directory -> 401 "Invalid token"
//
// Steps 3 and 4 are deliberately indistinguishable in the response so a
// caller cannot probe which usernames exist.
func (g *Gate) Authenticate(r *http.Request) (*user.Public, *apperrors.AppError) {
	raw, ok := bearerToken(r)
	if !ok {
		return nil, apperrors.NotAuthenticated()
	}

	claims, err := g.cfg.Codec.Decode(raw)
	if err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	if claims.Subject == "" {
		return nil, apperrors.InvalidToken()
	}

	pub, err := g.cfg.Directory.GetPublic(r.Context(), claims.Subject)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if pub == nil {
		return nil, apperrors.InvalidToken()
	}

	return pub, nil
}

// Middleware returns the gin middleware wrapping the gate. On success the
// identity is attached to the request context for downstream handlers; on
// failure the request is terminated with the translated error response and
// the handler never runs.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.Skip(c.Request.URL.Path) {
			c.Next()
			return
		}

		pub, authErr := g.Authenticate(c.Request)
		if authErr != nil {
			abortWithError(c, authErr)
			return
		}

		g.log.WithContext(c.Request.Context()).Info("Authenticated request", map[string]interface{}{
			"username": pub.Username,
		})

		c.Request = c.Request.WithContext(identity.Set(c.Request.Context(), pub))
		c.Next()
	}
}

// bearerToken extracts the credential from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
