package httpclient

import (
	"net/http"
	"net/url"
	"time"

	"retail-insights/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Get().With(
		zap.String("method", req.Method),
		zap.String("url", redact(req.URL)),
	)

	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// redact drops user info from a URL before it reaches the logs.
func redact(u *url.URL) string {
	if u.User == nil {
		return u.String()
	}
	c := *u
	c.User = nil
	return c.String()
}

// NewClient returns an http.Client with logging middleware.
// When proxyURL is non-nil every request is routed through it.
func NewClient(timeout time.Duration, proxyURL *url.URL) *http.Client {
	transport := http.DefaultTransport
	if proxyURL != nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.Proxy = http.ProxyURL(proxyURL)
		transport = t
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: timeout,
	}
}
