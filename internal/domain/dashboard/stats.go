package dashboard

import (
	"time"

	"github.com/BruksfildServices01/studio-agenda/internal/dto"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
)

// Compute derives the dashboard counters from already fetched rows.
func Compute(
	clients []models.Client,
	procedures []models.Procedure,
	appointments []models.Appointment,
	now time.Time,
	loc *time.Location,
) dto.DashboardDTO {

	out := dto.DashboardDTO{
		TotalClients:    len(clients),
		TotalProcedures: len(procedures),
	}

	for i := range clients {
		if clients[i].Active {
			out.ActiveClients++
		}
	}

	today := timezone.DayKey(now, loc)
	for i := range appointments {
		if timezone.DayKey(appointments[i].AppointmentDate, loc) == today {
			out.TodayAppointments++
		}
	}

	return out
}
