package engine

import "fmt"

// Smoothing constants.
const (
	Alpha        = 0.3
	Beta         = 0.1
	Gamma        = 0.1
	SeasonLength = 12
)

// MaxHorizon is the furthest a forecast may reach, ten years of months.
const MaxHorizon = 120

// Result is the outcome of a forecast.
type Result struct {
	// Requested is the model the caller asked for.
	Requested Model `json:"requestedModel"`
	// Used is the model that produced Values after any fallback.
	Used     Model     `json:"usedModel"`
	FellBack bool      `json:"fellBack"`
	Values   []float64 `json:"values"`
}

// Forecast projects series horizon steps ahead with model, falling back to a
// simpler model when the series is too short for it. The series is not modified.
func Forecast(model Model, series []float64, horizon int) (Result, error) {
	if horizon < 1 || horizon > MaxHorizon {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizon)
	}

	var run func([]float64, int) []float64
	used := resolve(model, len(series))
	switch used {
	case ModelSES:
		run = SES
	case ModelHolt:
		run = Holt
	case ModelHoltWinters:
		run = HoltWinters
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}

	return Result{
		Requested: model,
		Used:      used,
		FellBack:  used != model,
		Values:    run(series, horizon),
	}, nil
}

// SES forecasts with simple exponential smoothing. Every step repeats the
// final smoothed level; an empty series forecasts zeros.
func SES(series []float64, horizon int) []float64 {
	if len(series) == 0 {
		return make([]float64, horizon)
	}

	level := fold(series[1:], series[0], func(level float64, _ int, x float64) float64 {
		return Alpha*x + (1-Alpha)*level
	})

	return project(horizon, func(int) float64 { return level })
}

// Holt forecasts with double exponential smoothing. Series shorter than two
// points are forecast with SES.
func Holt(series []float64, horizon int) []float64 {
	if len(series) < 2 {
		return SES(series, horizon)
	}

	init := state{level: series[0], trend: series[1] - series[0]}
	s := fold(series[1:], init, func(s state, _ int, x float64) state {
		level := Alpha*x + (1-Alpha)*(s.level+s.trend)
		return state{
			level: level,
			trend: Beta*(level-s.level) + (1-Beta)*s.trend,
		}
	})

	return project(horizon, func(h int) float64 {
		return s.level + float64(h)*s.trend
	})
}

// HoltWinters forecasts with multiplicative triple exponential smoothing over
// a 12-month season. Series shorter than two seasons are forecast with Holt.
func HoltWinters(series []float64, horizon int) []float64 {
	n := len(series)
	if n < 2*SeasonLength {
		return Holt(series, horizon)
	}

	avg := nonZero(mean(series))
	seasonal := make([]float64, SeasonLength)
	for k := range seasonal {
		seasonal[k] = series[k%n] / avg
	}

	init := state{level: series[0], seasonal: seasonal}
	s := fold(series, init, func(s state, i int, x float64) state {
		slot := i % SeasonLength
		level := Alpha*(x/nonZero(s.seasonal[slot])) + (1-Alpha)*(s.level+s.trend)
		return state{
			level:    level,
			trend:    Beta*(level-s.level) + (1-Beta)*s.trend,
			seasonal: s.withSeason(slot, Gamma*(x/nonZero(level))+(1-Gamma)*s.seasonal[slot]),
		}
	})

	return project(horizon, func(h int) float64 {
		return (s.level + float64(h)*s.trend) * s.seasonal[(n+h-1)%SeasonLength]
	})
}

// project evaluates f for steps 1..horizon.
func project(horizon int, f func(h int) float64) []float64 {
	out := make([]float64, horizon)
	for h := 1; h <= horizon; h++ {
		out[h-1] = f(h)
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// nonZero substitutes 1 for a zero divisor.
func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
