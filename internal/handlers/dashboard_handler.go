package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/httpresp"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	ucDashboard "github.com/BruksfildServices01/studio-agenda/internal/usecase/dashboard"
)

type DashboardHandler struct {
	get *ucDashboard.GetDashboard
}

func NewDashboardHandler(get *ucDashboard.GetDashboard) *DashboardHandler {
	return &DashboardHandler{get: get}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context(), identity.FromGin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
