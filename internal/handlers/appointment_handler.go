package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/httpresp"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	ucAppointment "github.com/BruksfildServices01/studio-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	add          *ucAppointment.AddAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	agenda       *ucAppointment.ListAgenda
	options      *ucAppointment.BookingOptions
}

func NewAppointmentHandler(
	add *ucAppointment.AddAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	agenda *ucAppointment.ListAgenda,
	options *ucAppointment.BookingOptions,
) *AppointmentHandler {
	return &AppointmentHandler{
		add:          add,
		updateStatus: updateStatus,
		agenda:       agenda,
		options:      options,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    string     `json:"client_id" form:"client_id"`
	ProcedureID string     `json:"procedure_id" form:"procedure_id"`
	Date        string     `json:"date" form:"date"`
	Time        string     `json:"time" form:"time"`
	Paid        FlexString `json:"paid" form:"paid"`
	Notes       string     `json:"notes" form:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" form:"status"`
	Paid   *bool  `json:"paid" form:"paid"`
}

// ======================================================
// READ
// ======================================================

// List returns the agenda grouped by day.
func (h *AppointmentHandler) List(c *gin.Context) {
	days, err := h.agenda.Execute(c.Request.Context(), identity.FromGin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, days)
}

func (h *AppointmentHandler) Options(c *gin.Context) {
	opts, err := h.options.Execute(c.Request.Context(), identity.FromGin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, opts)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.add.Execute(c.Request.Context(), identity.FromGin(c), ucAppointment.AddAppointmentInput{
		ClientID:    req.ClientID,
		ProcedureID: req.ProcedureID,
		Date:        req.Date,
		Time:        req.Time,
		Paid:        string(req.Paid),
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Mutation(c, http.StatusCreated, res)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.updateStatus.Execute(c.Request.Context(), identity.FromGin(c), id, req.Status, req.Paid)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Mutation(c, http.StatusOK, res)
}
