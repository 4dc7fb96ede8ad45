package appointment

import (
	"time"

	"github.com/BruksfildServices01/studio-agenda/internal/locale"
)

// Settings are the per-deployment knobs shared by the appointment use
// cases.
type Settings struct {
	Location *time.Location
	Locale   *locale.Locale

	// TrackCounters bumps the client's cancelled/rescheduled counters on
	// status changes.
	TrackCounters bool

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (s Settings) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s Settings) locale() *locale.Locale {
	if s.Locale == nil {
		return locale.BrazilianPortuguese
	}
	return s.Locale
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.loc())
	}
	return time.Now().In(s.loc())
}
