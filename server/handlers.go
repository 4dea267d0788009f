package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/apibase/auth/password"
	"github.com/kbukum/apibase/auth/token"
	apperrors "github.com/kbukum/apibase/errors"
	"github.com/kbukum/apibase/logger"
	"github.com/kbukum/apibase/user"
	"github.com/kbukum/apibase/validation"
)

// Handlers implements the API route handlers.
type Handlers struct {
	directory user.Directory
	hasher    *password.Hasher
	tokens    *token.Service
	log       *logger.Logger
}

// NewHandlers creates the API handlers.
func NewHandlers(directory user.Directory, hasher *password.Hasher, tokens *token.Service, log *logger.Logger) *Handlers {
	return &Handlers{
		directory: directory,
		hasher:    hasher,
		tokens:    tokens,
		log:       log.WithComponent("api"),
	}
}

// Mount registers the API routes on r, typically a group at the API prefix.
func (h *Handlers) Mount(r gin.IRouter) {
	r.GET("/", h.Index)
	r.POST("/token", h.Token)
	r.POST("/register", h.Register)
	r.GET("/error/force", h.ForceError)
}

// TokenResponse is the credential issued to a logged-in or newly registered
// user.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type tokenRequest struct {
	Username  string `form:"username" json:"username" validate:"required"`
	Password  string `form:"password" json:"password" validate:"required"`
	GrantType string `form:"grant_type" json:"grant_type" validate:"required,oneof=password"`
}

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// Token handles the password login flow. The request is the OAuth2 password
// grant form. Unknown username and wrong password are deliberately
// indistinguishable in the response.
func (h *Handlers) Token(c *gin.Context) {
	var req tokenRequest
	_ = c.ShouldBind(&req)
	if err := validation.Validate(req); err != nil {
		RespondError(c, err)
		return
	}

	ctx := c.Request.Context()

	u, err := h.directory.Get(ctx, req.Username)
	if err != nil {
		RespondError(c, apperrors.Internal(err))
		return
	}
	if u == nil {
		RespondError(c, apperrors.IncorrectCredentials())
		return
	}

	ok, err := h.hasher.Verify(req.Password, u.HashedPassword)
	if err != nil {
		RespondError(c, apperrors.Internal(err))
		return
	}
	if !ok {
		RespondError(c, apperrors.IncorrectCredentials())
		return
	}

	signed, expiresAt, err := h.tokens.Issue(u.Username)
	if err != nil {
		RespondError(c, apperrors.Internal(err))
		return
	}

	h.log.WithContext(ctx).Info("User logged in", map[string]interface{}{
		"username": u.Username,
	})

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// Register creates a new user and logs them straight in by returning a token.
func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Validation("invalid request body"))
		return
	}
	if err := validation.Validate(req); err != nil {
		RespondError(c, err)
		return
	}

	ctx := c.Request.Context()

	exists, err := h.directory.Exists(ctx, req.Username)
	if err != nil {
		RespondError(c, apperrors.Internal(err))
		return
	}
	if exists {
		RespondError(c, apperrors.AlreadyExists())
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		RespondError(c, apperrors.Internal(err))
		return
	}

	err = h.directory.Create(ctx, &user.User{
		Username:       req.Username,
		HashedPassword: hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
	})
	if err != nil {
		// A concurrent registration may win between the Exists check and here.
		if errors.Is(err, user.ErrAlreadyExists) {
			RespondError(c, apperrors.AlreadyExists())
			return
		}
		RespondError(c, apperrors.Internal(err))
		return
	}

	signed, expiresAt, err := h.tokens.Issue(req.Username)
	if err != nil {
		RespondError(c, apperrors.Internal(err))
		return
	}

	h.log.WithContext(ctx).Info("User registered", map[string]interface{}{
		"username": req.Username,
	})

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// Index is the authenticated connectivity check.
func (h *Handlers) Index(c *gin.Context) {
	RespondOK(c, gin.H{"message": "Successfully connected to the API"})
}

// ForceError panics on purpose so the recovery path stays exercised.
func (h *Handlers) ForceError(c *gin.Context) {
	panic("forced error")
}
