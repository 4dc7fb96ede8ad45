package procedure

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// Fields is the procedure form; nil means not supplied. Price arrives as
// text so malformed input is a validation error, not a binding error.
type Fields struct {
	Name        *string
	Price       *string
	Description *string
}

func New(ownerID uuid.UUID, f Fields) (*models.Procedure, error) {
	if f.Name == nil || strings.TrimSpace(*f.Name) == "" {
		return nil, httperr.ErrValidation("missing_name")
	}
	if f.Price == nil {
		return nil, httperr.ErrValidation("invalid_price")
	}
	price, err := ParsePrice(*f.Price)
	if err != nil {
		return nil, err
	}

	return &models.Procedure{
		UserID:      ownerID,
		Name:        strings.TrimSpace(*f.Name),
		Price:       price,
		Description: optional(f.Description),
	}, nil
}

func Patch(f Fields) (map[string]any, error) {
	patch := map[string]any{}

	if f.Name != nil {
		name := strings.TrimSpace(*f.Name)
		if name == "" {
			return nil, httperr.ErrValidation("missing_name")
		}
		patch["name"] = name
	}
	if f.Price != nil {
		price, err := ParsePrice(*f.Price)
		if err != nil {
			return nil, err
		}
		patch["price"] = price
	}
	if f.Description != nil {
		patch["description"] = optional(f.Description)
	}

	if len(patch) == 0 {
		return nil, httperr.ErrValidation("empty_update")
	}
	return patch, nil
}

// MaxPrice is the first value that no longer fits decimal(10,2).
const MaxPrice = 100_000_000

var priceShape = regexp.MustCompile(`^\d+([.,]\d+)?$`)

// ParsePrice accepts "50", "50.5" and the comma form "50,50". The result
// is non-negative, below MaxPrice and rounded to cents.
func ParsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if !priceShape.MatchString(s) {
		return 0, httperr.ErrValidation("invalid_price")
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, httperr.ErrValidation("invalid_price")
	}
	v = math.Round(v*100) / 100
	if v >= MaxPrice {
		return 0, httperr.ErrValidation("invalid_price")
	}
	return v, nil
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
