package client

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
)

// Fields is the client form. A nil field was not supplied; an empty
// optional field clears the stored value.
type Fields struct {
	Name      *string
	Email     *string
	Phone     *string
	BirthDate *string
	Address   *string
}

// New validates a complete form into a client owned by ownerID.
func New(ownerID uuid.UUID, f Fields) (*models.Client, error) {
	name, err := required(f.Name, "missing_name")
	if err != nil {
		return nil, err
	}
	email, err := required(f.Email, "missing_email")
	if err != nil {
		return nil, err
	}
	birth, err := parseBirthDate(f.BirthDate)
	if err != nil {
		return nil, err
	}

	return &models.Client{
		UserID:    ownerID,
		Name:      name,
		Email:     email,
		Phone:     optional(f.Phone),
		BirthDate: birth,
		Address:   optional(f.Address),
		Active:    true,
	}, nil
}

// Patch validates the supplied fields into column updates.
func Patch(f Fields) (map[string]any, error) {
	patch := map[string]any{}

	if f.Name != nil {
		name, err := required(f.Name, "missing_name")
		if err != nil {
			return nil, err
		}
		patch["name"] = name
	}
	if f.Email != nil {
		email, err := required(f.Email, "missing_email")
		if err != nil {
			return nil, err
		}
		patch["email"] = email
	}
	if f.Phone != nil {
		patch["phone"] = optional(f.Phone)
	}
	if f.BirthDate != nil {
		birth, err := parseBirthDate(f.BirthDate)
		if err != nil {
			return nil, err
		}
		patch["birth_date"] = birth
	}
	if f.Address != nil {
		patch["address"] = optional(f.Address)
	}

	if len(patch) == 0 {
		return nil, httperr.ErrValidation("empty_update")
	}
	return patch, nil
}

func required(v *string, code string) (string, error) {
	if v == nil {
		return "", httperr.ErrValidation(code)
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", httperr.ErrValidation(code)
	}
	return s, nil
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func parseBirthDate(v *string) (*time.Time, error) {
	s := optional(v)
	if s == nil {
		return nil, nil
	}
	d, err := time.Parse(timezone.DayLayout, *s)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_birth_date")
	}
	return &d, nil
}

// Filter keeps the clients whose name, email or phone contains query,
// ignoring case. An empty query keeps everything.
func Filter(clients []models.Client, query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clients
	}

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			(c.Phone != nil && strings.Contains(*c.Phone, q)) {
			out = append(out, c)
		}
	}
	return out
}
