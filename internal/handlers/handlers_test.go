package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/locale"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/studio-agenda/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/studio-agenda/internal/usecase/client"
	ucProcedure "github.com/BruksfildServices01/studio-agenda/internal/usecase/procedure"
)

func init() { gin.SetMode(gin.TestMode) }

type mutationBody struct {
	Data        json.RawMessage `json:"data"`
	Invalidated []string        `json:"invalidated"`
}

type errorBody struct {
	Code string `json:"error_code"`
}

// asCaller stores who on the context the way the auth middleware does. A
// nil who leaves the request anonymous.
func asCaller(who *identity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if who != nil {
			identity.Set(c, *who)
		}
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doForm(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func errCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

// ======================================================
// CLIENTS
// ======================================================

func clientRouter(repo *fakeClients, who *identity.Identity) *gin.Engine {
	log := logging.Discard()
	h := NewClientHandler(
		ucClient.NewAddClient(repo, nil, nil, log),
		ucClient.NewUpdateClient(repo, nil, nil, log),
		ucClient.NewToggleClientStatus(repo, nil, nil, log),
		ucClient.NewListClients(repo, nil, log),
		ucClient.NewGetClient(repo),
	)

	r := gin.New()
	g := r.Group("/api/me", asCaller(who))
	g.GET("/clients", h.List)
	g.POST("/clients", h.Create)
	g.GET("/clients/:id", h.Get)
	g.PATCH("/clients/:id", h.Update)
	g.PATCH("/clients/:id/status", h.SetStatus)
	return r
}

func TestClientHandler_CreateJSON(t *testing.T) {
	repo := newFakeClients()
	who := &identity.Identity{UserID: uuid.New()}
	r := clientRouter(repo, who)

	w := doJSON(r, http.MethodPost, "/api/me/clients", `{"name":"Ana","email":"ana@x.com"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body mutationBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"/clients", "/"}, body.Invalidated)

	var c models.Client
	require.NoError(t, json.Unmarshal(body.Data, &c))
	assert.Equal(t, "Ana", c.Name)
	assert.True(t, c.Active)
}

func TestClientHandler_CreateForm(t *testing.T) {
	repo := newFakeClients()
	r := clientRouter(repo, &identity.Identity{UserID: uuid.New()})

	w := doForm(r, http.MethodPost, "/api/me/clients", url.Values{
		"name":       {"Bia"},
		"email":      {"bia@x.com"},
		"birth_date": {"1990-05-01"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, repo.rows, 1)
}

func TestClientHandler_Errors(t *testing.T) {
	repo := newFakeClients()

	anon := clientRouter(repo, nil)
	w := doJSON(anon, http.MethodPost, "/api/me/clients", `{"name":"Ana","email":"ana@x.com"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, repo.rows)

	r := clientRouter(repo, &identity.Identity{UserID: uuid.New()})

	w = doJSON(r, http.MethodPost, "/api/me/clients", `{"name":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_email", errCode(t, w))

	w = doJSON(r, http.MethodGet, "/api/me/clients/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", errCode(t, w))

	w = doJSON(r, http.MethodPatch, "/api/me/clients/"+uuid.NewString(), `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/me/clients/"+uuid.NewString()+"/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_active", errCode(t, w))
}

func TestClientHandler_SetStatusAndList(t *testing.T) {
	repo := newFakeClients()
	who := &identity.Identity{UserID: uuid.New()}
	r := clientRouter(repo, who)

	w := doJSON(r, http.MethodPost, "/api/me/clients", `{"name":"Ana Souza","email":"ana@x.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created mutationBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	var c models.Client
	require.NoError(t, json.Unmarshal(created.Data, &c))

	w = doJSON(r, http.MethodPatch, "/api/me/clients/"+c.ID.String()+"/status", `{"active":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body mutationBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"/clients", "/appointments/new", "/"}, body.Invalidated)

	w = doJSON(r, http.MethodGet, "/api/me/clients?query=souza", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = doJSON(r, http.MethodGet, "/api/me/clients?query=nobody", "")
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}

// ======================================================
// PROCEDURES
// ======================================================

func procedureRouter(repo *fakeProcedures, who *identity.Identity) *gin.Engine {
	log := logging.Discard()
	h := NewProcedureHandler(
		ucProcedure.NewAddProcedure(repo, nil, nil, log),
		ucProcedure.NewUpdateProcedure(repo, nil, nil, log),
		ucProcedure.NewListProcedures(repo, nil, log),
		ucProcedure.NewGetProcedure(repo),
	)

	r := gin.New()
	g := r.Group("/api/me", asCaller(who))
	g.POST("/procedures", h.Create)
	g.PATCH("/procedures/:id", h.Update)
	g.GET("/procedures", h.List)
	return r
}

func TestProcedureHandler_PriceForms(t *testing.T) {
	repo := &fakeProcedures{rows: map[uuid.UUID]*models.Procedure{}}
	r := procedureRouter(repo, &identity.Identity{UserID: uuid.New()})

	w := doJSON(r, http.MethodPost, "/api/me/procedures", `{"name":"Corte","price":50}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doForm(r, http.MethodPost, "/api/me/procedures", url.Values{"name": {"Escova"}, "price": {"40,50"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body mutationBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	var p models.Procedure
	require.NoError(t, json.Unmarshal(body.Data, &p))
	assert.Equal(t, 40.5, p.Price)
	assert.Equal(t, []string{"/procedures", "/"}, body.Invalidated)

	w = doJSON(r, http.MethodPost, "/api/me/procedures", `{"name":"Corte","price":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_price", errCode(t, w))
	assert.Len(t, repo.rows, 2)

	w = doJSON(r, http.MethodGet, "/api/me/procedures", "")
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}

// ======================================================
// APPOINTMENTS
// ======================================================

func appointmentRouter(repo *fakeAppointments, who *identity.Identity) *gin.Engine {
	log := logging.Discard()
	settings := ucAppointment.Settings{
		Location: timezone.Location("America/Sao_Paulo"),
		Locale:   locale.BrazilianPortuguese,
		Now:      func() time.Time { return time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC) },
	}
	h := NewAppointmentHandler(
		ucAppointment.NewAddAppointment(repo, nil, nil, log, settings),
		ucAppointment.NewUpdateAppointmentStatus(repo, nil, nil, log, settings),
		ucAppointment.NewListAgenda(repo, log, settings),
		ucAppointment.NewBookingOptions(repo, log, settings),
	)

	r := gin.New()
	g := r.Group("/api/me", asCaller(who))
	g.GET("/appointments", h.List)
	g.GET("/appointments/options", h.Options)
	g.POST("/appointments", h.Create)
	g.PATCH("/appointments/:id/status", h.UpdateStatus)
	return r
}

func TestAppointmentHandler_CreateAndUpdateStatus(t *testing.T) {
	repo := &fakeAppointments{rows: map[uuid.UUID]*models.Appointment{}}
	r := appointmentRouter(repo, &identity.Identity{UserID: uuid.New()})

	w := doJSON(r, http.MethodPost, "/api/me/appointments", `{
		"client_id":"`+uuid.NewString()+`",
		"procedure_id":"`+uuid.NewString()+`",
		"date":"2024-03-10","time":"09:00","paid":true
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body mutationBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"/appointments", "/"}, body.Invalidated)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(body.Data, &ap))
	assert.True(t, ap.Paid)
	assert.Equal(t, "scheduled", ap.Status)

	w = doJSON(r, http.MethodPatch, "/api/me/appointments/"+ap.ID.String()+"/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", errCode(t, w))

	w = doForm(r, http.MethodPatch, "/api/me/appointments/"+ap.ID.String()+"/status", url.Values{"status": {"completed"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "completed", repo.rows[ap.ID].Status)
	assert.True(t, repo.rows[ap.ID].Paid)
}

func TestAppointmentHandler_PaidFormOnlyLiteralTrue(t *testing.T) {
	repo := &fakeAppointments{rows: map[uuid.UUID]*models.Appointment{}}
	r := appointmentRouter(repo, &identity.Identity{UserID: uuid.New()})

	w := doForm(r, http.MethodPost, "/api/me/appointments", url.Values{
		"client_id":    {uuid.NewString()},
		"procedure_id": {uuid.NewString()},
		"date":         {"2024-03-10"},
		"time":         {"09:00"},
		"paid":         {"on"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	for _, ap := range repo.rows {
		assert.False(t, ap.Paid)
	}
}

func TestAppointmentHandler_ReadsAreEmptyArrays(t *testing.T) {
	repo := &fakeAppointments{rows: map[uuid.UUID]*models.Appointment{}}
	r := appointmentRouter(repo, &identity.Identity{UserID: uuid.New()})

	w := doJSON(r, http.MethodGet, "/api/me/appointments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/me/appointments/options", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clients":[],"procedures":[],"default_date":"2024-03-10","default_time":"05:00"}`, w.Body.String())

	anon := appointmentRouter(repo, nil)
	w = doJSON(anon, http.MethodGet, "/api/me/appointments", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
