package appointment

import "github.com/BruksfildServices01/studio-agenda/internal/models"

// Quick actions offered next to an appointment in the agenda. They are
// display hints; UpdateStatus accepts any transition.

func CanComplete(ap *models.Appointment) bool {
	return Status(ap.Status) == StatusScheduled
}

func CanCancel(ap *models.Appointment) bool {
	return Status(ap.Status) == StatusScheduled
}

func CanMarkPaid(ap *models.Appointment) bool {
	return !ap.Paid && Status(ap.Status) != StatusCancelled
}
