package appointment

import (
	"time"

	"github.com/BruksfildServices01/studio-agenda/internal/dto"
	"github.com/BruksfildServices01/studio-agenda/internal/locale"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
)

// GroupByDay partitions aps by local calendar date. Groups appear in the
// order their first appointment appears and each group keeps input order,
// so an ascending input gives ascending days and times.
func GroupByDay(
	aps []models.Appointment,
	now time.Time,
	loc *time.Location,
	l *locale.Locale,
) []dto.AppointmentDayDTO {

	groups := make([]dto.AppointmentDayDTO, 0)
	index := make(map[string]int)
	today := timezone.DayKey(now, loc)

	for i := range aps {
		item := ToListItem(&aps[i], today, loc, l)
		day := timezone.DayKey(aps[i].AppointmentDate, loc)

		pos, ok := index[day]
		if !ok {
			local := aps[i].AppointmentDate.In(loc)
			g := dto.AppointmentDayDTO{
				Date:    day,
				IsToday: day == today,
				IsPast:  day < today,
			}
			if g.IsToday {
				g.Label = l.Today
			} else {
				g.Label = l.DayLabel(local)
			}

			groups = append(groups, g)
			pos = len(groups) - 1
			index[day] = pos
		}

		groups[pos].Appointments = append(groups[pos].Appointments, item)
	}

	return groups
}

// ToListItem flattens an appointment with its preloaded client and
// procedure. A missing relation renders with placeholders.
func ToListItem(
	ap *models.Appointment,
	today string,
	loc *time.Location,
	l *locale.Locale,
) dto.AppointmentListDTO {

	local := ap.AppointmentDate.In(loc)

	item := dto.AppointmentListDTO{
		ID:              ap.ID,
		AppointmentDate: local,
		Time:            local.Format("15:04"),
		Status:          ap.Status,
		StatusLabel:     l.Status(ap.Status),
		Paid:            ap.Paid,
		ClientName:      l.UnknownClient,
		ProcedureName:   l.UnknownProcedure,
		IsPast:          timezone.DayKey(local, loc) < today,
		CanComplete:     CanComplete(ap),
		CanCancel:       CanCancel(ap),
		CanMarkPaid:     CanMarkPaid(ap),
	}

	if ap.Notes != nil {
		item.Notes = *ap.Notes
	}

	if ap.Client != nil {
		id := ap.Client.ID
		item.ClientID = &id
		item.ClientName = ap.Client.Name
		item.ClientEmail = ap.Client.Email
	}

	if ap.Procedure != nil {
		id := ap.Procedure.ID
		item.ProcedureID = &id
		item.ProcedureName = ap.Procedure.Name
		item.Price = ap.Procedure.Price
	}
	item.PriceLabel = l.Price(item.Price)

	return item
}
