package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/client"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/httpresp"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	ucClient "github.com/BruksfildServices01/studio-agenda/internal/usecase/client"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	add    *ucClient.AddClient
	update *ucClient.UpdateClient
	toggle *ucClient.ToggleClientStatus
	list   *ucClient.ListClients
	get    *ucClient.GetClient
}

func NewClientHandler(
	add *ucClient.AddClient,
	update *ucClient.UpdateClient,
	toggle *ucClient.ToggleClientStatus,
	list *ucClient.ListClients,
	get *ucClient.GetClient,
) *ClientHandler {
	return &ClientHandler{
		add:    add,
		update: update,
		toggle: toggle,
		list:   list,
		get:    get,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ClientRequest struct {
	Name      *string `json:"name" form:"name"`
	Email     *string `json:"email" form:"email"`
	Phone     *string `json:"phone" form:"phone"`
	BirthDate *string `json:"birth_date" form:"birth_date"`
	Address   *string `json:"address" form:"address"`
}

func (r ClientRequest) fields() domain.Fields {
	return domain.Fields{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		BirthDate: r.BirthDate,
		Address:   r.Address,
	}
}

type ClientStatusRequest struct {
	Active *bool `json:"active" form:"active"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), identity.FromGin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, domain.Filter(clients, c.Query("query")))
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.get.Execute(c.Request.Context(), identity.FromGin(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.add.Execute(c.Request.Context(), identity.FromGin(c), req.fields())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Mutation(c, http.StatusCreated, res)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ClientRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.update.Execute(c.Request.Context(), identity.FromGin(c), id, req.fields())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Mutation(c, http.StatusOK, res)
}

func (h *ClientHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ClientStatusRequest
	if !bind(c, &req) {
		return
	}
	if req.Active == nil {
		httperr.Respond(c, httperr.ErrValidation("missing_active"))
		return
	}

	res, err := h.toggle.Execute(c.Request.Context(), identity.FromGin(c), id, *req.Active)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Mutation(c, http.StatusOK, res)
}
