package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/httpresp"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
)

// AuditLogReader is the read side of the audit store.
type AuditLogReader interface {
	List(ctx context.Context, ownerID uuid.UUID, f audit.Filter) (*audit.Page, error)
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store AuditLogReader
	loc   *time.Location
}

func NewAuditLogsHandler(store AuditLogReader, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	ownerID, err := identity.Require(identity.FromGin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	if from, err := timezone.ParseDate(c.Query("from"), h.loc); err == nil {
		f.From = &from
	}
	if to, err := timezone.ParseDate(c.Query("to"), h.loc); err == nil {
		f.To = &to
	}

	out, err := h.store.List(c.Request.Context(), ownerID, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}
