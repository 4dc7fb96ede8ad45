package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-agenda/internal/locale"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

func at(loc *time.Location, y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, loc)
}

func withRelations(ap models.Appointment, client string, price float64) models.Appointment {
	ap.Client = &models.Client{ID: uuid.New(), Name: client, Email: client + "@x.com"}
	ap.Procedure = &models.Procedure{ID: uuid.New(), Name: "Corte", Price: price}
	return ap
}

func TestGroupByDay_StableAscending(t *testing.T) {
	loc := time.UTC
	now := at(loc, 2024, 1, 5, 12, 0)

	a := withRelations(models.Appointment{ID: uuid.New(), AppointmentDate: at(loc, 2024, 1, 1, 9, 0), Status: "scheduled"}, "ana", 50)
	b := withRelations(models.Appointment{ID: uuid.New(), AppointmentDate: at(loc, 2024, 1, 1, 14, 0), Status: "scheduled"}, "bia", 50)
	c := withRelations(models.Appointment{ID: uuid.New(), AppointmentDate: at(loc, 2024, 1, 2, 10, 0), Status: "scheduled"}, "caio", 50)

	groups := GroupByDay([]models.Appointment{a, b, c}, now, loc, locale.BrazilianPortuguese)

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-01-01", groups[0].Date)
	assert.Equal(t, "2024-01-02", groups[1].Date)

	require.Len(t, groups[0].Appointments, 2)
	assert.Equal(t, a.ID, groups[0].Appointments[0].ID)
	assert.Equal(t, b.ID, groups[0].Appointments[1].ID)
	assert.Equal(t, "09:00", groups[0].Appointments[0].Time)
	assert.Equal(t, "14:00", groups[0].Appointments[1].Time)

	require.Len(t, groups[1].Appointments, 1)
	assert.Equal(t, c.ID, groups[1].Appointments[0].ID)
}

func TestGroupByDay_DoesNotResort(t *testing.T) {
	loc := time.UTC
	now := at(loc, 2024, 1, 5, 12, 0)

	late := models.Appointment{ID: uuid.New(), AppointmentDate: at(loc, 2024, 1, 3, 9, 0)}
	early := models.Appointment{ID: uuid.New(), AppointmentDate: at(loc, 2024, 1, 1, 9, 0)}

	groups := GroupByDay([]models.Appointment{late, early}, now, loc, locale.AmericanEnglish)

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-01-03", groups[0].Date)
	assert.Equal(t, "2024-01-01", groups[1].Date)
}

func TestGroupByDay_TodayAndPastFlags(t *testing.T) {
	loc := time.UTC
	now := at(loc, 2024, 3, 10, 8, 0)

	aps := []models.Appointment{
		{ID: uuid.New(), AppointmentDate: at(loc, 2024, 3, 9, 18, 0), Status: "completed"},
		{ID: uuid.New(), AppointmentDate: at(loc, 2024, 3, 10, 7, 0), Status: "scheduled"},
		{ID: uuid.New(), AppointmentDate: at(loc, 2024, 3, 11, 9, 0), Status: "scheduled"},
	}

	groups := GroupByDay(aps, now, loc, locale.BrazilianPortuguese)
	require.Len(t, groups, 3)

	past, today, future := groups[0], groups[1], groups[2]

	assert.True(t, past.IsPast)
	assert.False(t, past.IsToday)
	assert.Equal(t, "sábado, 9 de março de 2024", past.Label)
	assert.True(t, past.Appointments[0].IsPast)

	// An earlier hour on the current day is not past.
	assert.True(t, today.IsToday)
	assert.False(t, today.IsPast)
	assert.Equal(t, "Hoje", today.Label)
	assert.False(t, today.Appointments[0].IsPast)

	assert.False(t, future.IsPast)
	assert.False(t, future.IsToday)
	assert.Equal(t, "segunda-feira, 11 de março de 2024", future.Label)
}

func TestGroupByDay_UsesLocalDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:30 UTC on the 10th is 22:30 on the 9th in São Paulo.
	ap := models.Appointment{ID: uuid.New(), AppointmentDate: time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)}
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, loc)

	groups := GroupByDay([]models.Appointment{ap}, now, loc, locale.AmericanEnglish)

	require.Len(t, groups, 1)
	assert.Equal(t, "2024-03-09", groups[0].Date)
	assert.Equal(t, "22:30", groups[0].Appointments[0].Time)
}

func TestGroupByDay_EmptyInput(t *testing.T) {
	groups := GroupByDay(nil, time.Now(), time.UTC, locale.BrazilianPortuguese)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupByDay_OrphanedReferencesUsePlaceholders(t *testing.T) {
	loc := time.UTC
	ap := models.Appointment{ID: uuid.New(), AppointmentDate: at(loc, 2024, 1, 1, 9, 0), Status: "scheduled"}

	groups := GroupByDay([]models.Appointment{ap}, at(loc, 2024, 1, 1, 8, 0), loc, locale.BrazilianPortuguese)

	require.Len(t, groups, 1)
	item := groups[0].Appointments[0]
	assert.Equal(t, "Cliente desconhecido", item.ClientName)
	assert.Equal(t, "Procedimento desconhecido", item.ProcedureName)
	assert.Nil(t, item.ClientID)
	assert.Nil(t, item.ProcedureID)
	assert.Zero(t, item.Price)
}

func TestToListItem_QuickActionsAndLabels(t *testing.T) {
	loc := time.UTC
	notes := "trazer foto"
	ap := withRelations(models.Appointment{
		ID:              uuid.New(),
		AppointmentDate: at(loc, 2024, 1, 1, 9, 0),
		Status:          "scheduled",
		Notes:           &notes,
	}, "ana", 50)

	item := ToListItem(&ap, "2024-01-01", loc, locale.BrazilianPortuguese)

	assert.Equal(t, "Agendado", item.StatusLabel)
	assert.Equal(t, "R$ 50,00", item.PriceLabel)
	assert.Equal(t, "trazer foto", item.Notes)
	assert.Equal(t, "ana", item.ClientName)
	assert.True(t, item.CanComplete)
	assert.True(t, item.CanCancel)
	assert.True(t, item.CanMarkPaid)

	ap.Status = "cancelled"
	item = ToListItem(&ap, "2024-01-01", loc, locale.BrazilianPortuguese)
	assert.False(t, item.CanComplete)
	assert.False(t, item.CanCancel)
	assert.False(t, item.CanMarkPaid)
}
