package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-agenda/internal/config"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
	"github.com/BruksfildServices01/studio-agenda/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	logger logging.Logger

	// emailDomainOK is swapped in tests to avoid DNS lookups.
	emailDomainOK func(email string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		db:            db,
		config:        cfg,
		logger:        logger,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailSyntaxValid(email) {
		httperr.Respond(c, httperr.ErrValidation("invalid_email"))
		return
	}

	if !h.emailDomainOK(email) {
		httperr.Respond(c, httperr.ErrValidation("invalid_email_domain"))
		return
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Respond(c, httperr.ErrPersistence("user_lookup_failed", err))
		return
	}
	if count > 0 {
		httperr.Respond(c, httperr.ErrValidation("email_already_used"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, httperr.ErrPersistence("failed_to_hash_password", err))
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		h.logger.Error(ctx, "create user failed", "err", err)
		httperr.Respond(c, httperr.ErrPersistence("failed_to_create_user", err))
		return
	}

	h.respondWithToken(c, http.StatusCreated, &user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailSyntaxValid(email) {
		httperr.Respond(c, httperr.ErrAuth("invalid_credentials"))
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.ErrAuth("invalid_credentials"))
			return
		}
		httperr.Respond(c, httperr.ErrPersistence("user_lookup_failed", err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Respond(c, httperr.ErrAuth("invalid_credentials"))
		return
	}

	h.respondWithToken(c, http.StatusOK, &user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := identity.IssueToken(h.config.JWTSecret, h.config.TokenTTL, user.ID, user.Email)
	if err != nil {
		httperr.Respond(c, httperr.ErrPersistence("failed_to_generate_token", err))
		return
	}

	c.JSON(status, gin.H{
		"user":  userView(user),
		"token": token,
	})
}
