package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Model identifies a forecasting model.
type Model string

const (
	ModelSES         Model = "ses"
	ModelHolt        Model = "holt"
	ModelHoltWinters Model = "holt-winters"
)

var (
	// ErrUnknownModel is returned for a model identifier other than ses, holt or holt-winters.
	ErrUnknownModel = errors.New("unknown forecast model")
	// ErrInvalidHorizon is returned when the horizon is outside 1..MaxHorizon.
	ErrInvalidHorizon = errors.New("forecast horizon must be between 1 and 120")
)

var aliases = map[string]Model{
	"ses":          ModelSES,
	"simple":       ModelSES,
	"holt":         ModelHolt,
	"double":       ModelHolt,
	"holt-winters": ModelHoltWinters,
	"holtwinters":  ModelHoltWinters,
	"triple":       ModelHoltWinters,
}

// ParseModel resolves a model identifier, ignoring case and surrounding space.
func ParseModel(s string) (Model, error) {
	m, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
	}
	return m, nil
}

// minPoints is the shortest series the model runs on without falling back.
func (m Model) minPoints() int {
	switch m {
	case ModelHoltWinters:
		return 2 * SeasonLength
	case ModelHolt:
		return 2
	default:
		return 0
	}
}

// fallback is the next simpler model.
func (m Model) fallback() Model {
	switch m {
	case ModelHoltWinters:
		return ModelHolt
	default:
		return ModelSES
	}
}

// resolve walks the fallback chain until a model fits n points.
func resolve(m Model, n int) Model {
	for n < m.minPoints() {
		m = m.fallback()
	}
	return m
}
