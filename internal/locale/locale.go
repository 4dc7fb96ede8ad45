// Package locale holds the display strings and formats of the agenda:
// day labels, status names, placeholders and prices.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Locale struct {
	Tag language.Tag

	Today            string
	UnknownClient    string
	UnknownProcedure string
	Currency         string

	weekdays [7]string
	months   [12]string
	longDate func(l *Locale, t time.Time) string
	statuses map[string]string
	printer  *message.Printer
}

var (
	BrazilianPortuguese = &Locale{
		Tag:              language.BrazilianPortuguese,
		Today:            "Hoje",
		UnknownClient:    "Cliente desconhecido",
		UnknownProcedure: "Procedimento desconhecido",
		Currency:         "R$",
		weekdays: [7]string{
			"domingo", "segunda-feira", "terça-feira", "quarta-feira",
			"quinta-feira", "sexta-feira", "sábado",
		},
		months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		longDate: func(l *Locale, t time.Time) string {
			return fmt.Sprintf("%s, %d de %s de %d",
				l.weekdays[t.Weekday()], t.Day(), l.months[t.Month()-1], t.Year())
		},
		statuses: map[string]string{
			"scheduled":   "Agendado",
			"completed":   "Concluído",
			"cancelled":   "Cancelado",
			"rescheduled": "Reagendado",
		},
		printer: message.NewPrinter(language.BrazilianPortuguese),
	}

	AmericanEnglish = &Locale{
		Tag:              language.AmericanEnglish,
		Today:            "Today",
		UnknownClient:    "Unknown client",
		UnknownProcedure: "Unknown procedure",
		Currency:         "$",
		longDate: func(_ *Locale, t time.Time) string {
			return t.Format("Monday, January 2, 2006")
		},
		statuses: map[string]string{
			"scheduled":   "Scheduled",
			"completed":   "Completed",
			"cancelled":   "Cancelled",
			"rescheduled": "Rescheduled",
		},
		printer: message.NewPrinter(language.AmericanEnglish),
	}
)

var (
	supported = []*Locale{BrazilianPortuguese, AmericanEnglish}
	matcher   = language.NewMatcher([]language.Tag{
		language.BrazilianPortuguese,
		language.AmericanEnglish,
	})
)

// For picks the closest supported locale for a BCP 47 name. Unparseable
// names get Brazilian Portuguese.
func For(name string) *Locale {
	tag, err := language.Parse(name)
	if err != nil {
		return BrazilianPortuguese
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// DayLabel is the long weekday/day/month/year form of t's date.
func (l *Locale) DayLabel(t time.Time) string {
	return l.longDate(l, t)
}

// Status returns the display name of a status, or the raw value when it
// is not known.
func (l *Locale) Status(status string) string {
	if s, ok := l.statuses[status]; ok {
		return s
	}
	return status
}

func (l *Locale) Price(v float64) string {
	return l.Currency + " " + l.printer.Sprintf("%.2f", v)
}
