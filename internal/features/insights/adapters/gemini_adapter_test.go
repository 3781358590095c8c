package adapter

import (
	"context"
	"testing"
	"time"

	"retail-insights/internal/core/config"
	"retail-insights/internal/features/insights/domain"
	"retail-insights/internal/features/insights/ports"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{"Nil", nil, "", true},
		{"NoCandidates", &genai.GenerateContentResponse{}, "", true},
		{"NoContent", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, "", true},
		{
			"NoText",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}},
			}}},
			"", true,
		},
		{
			"Joined",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)}},
			}}},
			`{"a":1}`, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responseText(tt.resp)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeminiRole(t *testing.T) {
	assert.Equal(t, "user", geminiRole(domain.RoleUser))
	assert.Equal(t, "model", geminiRole(domain.RoleAssistant))
}

func TestNewGeminiAdapter(t *testing.T) {
	g, err := NewGeminiAdapter(context.Background(), config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		Timeout: time.Second,
	})
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, "gemini-1.5-flash", g.model)
}

func TestUnconfiguredGenerator(t *testing.T) {
	var gen ports.TextGenerator = UnconfiguredGenerator{}

	_, err := gen.Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, ports.ErrNotConfigured)

	_, err = gen.Chat(context.Background(), "", nil, "hello")
	assert.ErrorIs(t, err, ports.ErrNotConfigured)
}
