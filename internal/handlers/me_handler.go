package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/httpresp"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	ownerID, err := identity.Require(identity.FromGin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		First(&user, "id = ?", ownerID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.ErrAuth("unauthenticated"))
			return
		}
		httperr.Respond(c, httperr.ErrPersistence("user_lookup_failed", err))
		return
	}

	httpresp.OK(c, gin.H{"user": userView(&user)})
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}
