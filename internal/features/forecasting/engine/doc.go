// Package engine implements exponential smoothing forecasts over monthly unit sales.
//
// Three models are available:
//   - ses: simple exponential smoothing (level only)
//   - holt: double exponential smoothing (level and trend)
//   - holt-winters: triple exponential smoothing with a multiplicative
//     12-month season
//
// Smoothing constants are fixed (alpha 0.3, beta 0.1, gamma 0.1); nothing is fitted.
//
// # Basic Usage
//
//	model, err := engine.ParseModel("holt-winters")
//	if err != nil {
//	    return err
//	}
//
//	result, err := engine.Forecast(model, []float64{12, 15, 14, 18}, 3)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Used, result.Values)
//
// # Fallback
//
// A model that needs more history than the series holds is replaced by the
// next simpler one: holt-winters needs two full seasons (24 points) and
// falls back to holt, which needs 2 points and falls back to ses. The
// Result always reports which model actually produced the values.
package engine
