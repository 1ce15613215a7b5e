// Package llm holds the external distance-estimation collaborator: a
// Gemini client that is asked, in natural language, for the driving
// distance between two places. The reply is free text; extraction of the
// numeric distance happens in the service layer.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemInstruction = "Eres un asistente experto en logística y navegación. " +
	"Proporcionas distancias de conducción realistas basadas en el callejero de la ciudad."

// GeminiEstimator asks the Gemini API for driving distances. Both place
// names are qualified with a fixed city context so short street names
// resolve to the right city.
type GeminiEstimator struct {
	client *genai.Client
	model  string
	city   string
}

// NewGeminiEstimator creates a Gemini-backed distance estimator.
func NewGeminiEstimator(ctx context.Context, apiKey, model, city string) (*GeminiEstimator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiEstimator{
		client: client,
		model:  model,
		city:   city,
	}, nil
}

// EstimateRoute asks for the fastest driving distance between origin and
// destination and returns the model's raw reply. The caller owns parsing;
// the reply carries no correctness guarantee.
func (e *GeminiEstimator) EstimateRoute(ctx context.Context, origin, destination string) (string, error) {
	prompt := fmt.Sprintf(
		`Actúa como un GPS preciso en %s. Calcula la distancia de conducción más rápida entre "%s, %s" y "%s, %s". Responde SOLAMENTE con el número seguido de "km" (ejemplo: 5.4 km).`,
		e.city, origin, e.city, destination, e.city,
	)

	// Low temperature keeps the reply close to deterministic.
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.1),
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty reply")
	}
	return text, nil
}
