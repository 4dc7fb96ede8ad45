package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/procedure"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/httpresp"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	ucProcedure "github.com/BruksfildServices01/studio-agenda/internal/usecase/procedure"
)

type ProcedureHandler struct {
	add    *ucProcedure.AddProcedure
	update *ucProcedure.UpdateProcedure
	list   *ucProcedure.ListProcedures
	get    *ucProcedure.GetProcedure
}

func NewProcedureHandler(
	add *ucProcedure.AddProcedure,
	update *ucProcedure.UpdateProcedure,
	list *ucProcedure.ListProcedures,
	get *ucProcedure.GetProcedure,
) *ProcedureHandler {
	return &ProcedureHandler{
		add:    add,
		update: update,
		list:   list,
		get:    get,
	}
}

// --------- Requests ---------

type ProcedureRequest struct {
	Name        *string     `json:"name" form:"name"`
	Price       *FlexString `json:"price" form:"price"`
	Description *string     `json:"description" form:"description"`
}

func (r ProcedureRequest) fields() domain.Fields {
	return domain.Fields{
		Name:        r.Name,
		Price:       r.Price.ptr(),
		Description: r.Description,
	}
}

// --------- Handlers ---------

func (h *ProcedureHandler) List(c *gin.Context) {
	procedures, err := h.list.Execute(c.Request.Context(), identity.FromGin(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, procedures)
}

func (h *ProcedureHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), identity.FromGin(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *ProcedureHandler) Create(c *gin.Context) {
	var req ProcedureRequest
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

func (h *ProcedureHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ProcedureRequest
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
