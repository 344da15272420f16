// Package session scopes one product evaluation: it clamps and defaults raw
// inputs at the boundary so the core never sees out-of-contract values, and
// records every adjustment it made. Session state lives for one evaluation
// only; nothing is shared between requests.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/model"
	"github.com/sells-group/gonogo-cli/internal/rates"
)

// Limits bounds the numeric inputs.
type Limits struct {
	MinWeightGrams float64
	MaxWeightGrams float64
	MinPrice       float64
	MaxPrice       float64
}

// DefaultLimits returns the standard input bounds.
func DefaultLimits() Limits {
	return Limits{
		MinWeightGrams: 50,
		MaxWeightGrams: 1000,
		MinPrice:       50,
		MaxPrice:       2000,
	}
}

// RawInput is the unvalidated request as received from the CLI or API.
type RawInput struct {
	Description   string
	Category      string
	Channel       string
	WeightGrams   float64
	Price         float64
	Zone          string
	PackagingType string
}

// Session is one evaluation's request context.
type Session struct {
	ID        string
	CreatedAt time.Time

	Description   string
	Category      model.Category
	Channel       model.Channel
	WeightGrams   float64
	Price         float64
	Zone          rates.Zone
	PackagingType string

	// Adjustments lists every clamp or default applied to the raw input.
	Adjustments []string
}

// New clamps and defaults raw input into an evaluation session.
func New(raw RawInput, limits Limits) *Session {
	s := &Session{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Description:   raw.Description,
		Category:      model.ParseCategory(raw.Category),
		Channel:       model.ParseChannel(raw.Channel),
		Zone:          rates.ParseZone(raw.Zone),
		PackagingType: raw.PackagingType,
	}

	if raw.Category != "" && s.Category == model.CategoryOther {
		s.note("category %q not recognized, using %s", raw.Category, model.CategoryOther)
	}

	s.WeightGrams = clamp(raw.WeightGrams, limits.MinWeightGrams, limits.MaxWeightGrams)
	if s.WeightGrams != raw.WeightGrams {
		s.note("weight %.0fg clamped to %.0fg", raw.WeightGrams, s.WeightGrams)
	}

	s.Price = clamp(raw.Price, limits.MinPrice, limits.MaxPrice)
	if s.Price != raw.Price {
		s.note("price %.2f clamped to %.2f", raw.Price, s.Price)
	}

	if len(s.Adjustments) > 0 {
		zap.L().Debug("session: input adjusted",
			zap.String("session_id", s.ID),
			zap.Strings("adjustments", s.Adjustments),
		)
	}
	return s
}

func (s *Session) note(format string, args ...any) {
	s.Adjustments = append(s.Adjustments, fmt.Sprintf(format, args...))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
