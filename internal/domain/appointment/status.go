package appointment

import (
	"strings"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

var statuses = [...]Status{
	StatusScheduled,
	StatusCompleted,
	StatusCancelled,
	StatusRescheduled,
}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus is the only check on a status change: any known status may
// follow any other, and paid is independent of it.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", httperr.ErrValidation("invalid_status")
	}
	return s, nil
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Transitions
// ===============================

// CounterColumn names the client counter bumped when an appointment moves
// from -> to, or "" when none applies. Re-applying the same status bumps
// nothing.
func CounterColumn(from, to Status) string {
	if from == to {
		return ""
	}
	switch to {
	case StatusCancelled:
		return "cancelled_count"
	case StatusRescheduled:
		return "rescheduled_count"
	}
	return ""
}
