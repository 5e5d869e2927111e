// Package estimator generates priced estimates from a project description
// using Gemini with search grounding. It owns the model boundary: prompt
// construction, quota retries, extraction of the JSON payload from the model
// answer, and normalization of the result into a boq.Estimate.
package estimator

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"github.com/autoqs/boq"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-flash-latest"

const (
	maxRetries   = 3
	initialDelay = 2 * time.Second
)

// Attachment is an optional drawing or document sent along with the
// description.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// Request carries everything the model needs to price a project.
type Request struct {
	Description string
	Standard    boq.MeasurementStandard
	Country     boq.Country
	File        *Attachment
}

// Estimator generates estimates through a Gemini client.
type Estimator struct {
	client *genai.Client
	Model  string

	// sleep is replaced in tests to avoid real backoff delays.
	sleep func(time.Duration)
}

// New creates an Estimator on top of an existing Gemini client.
func New(client *genai.Client) *Estimator {
	return &Estimator{
		client: client,
		Model:  DefaultModel,
		sleep:  time.Sleep,
	}
}

// NewClient creates the Gemini client from the environment (GEMINI_API_KEY
// or GOOGLE_API_KEY).
func NewClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return client, nil
}

// Generate prices the project described in req and returns the resulting
// estimate. Quota rejections are retried with doubling delays; any other
// model error aborts immediately.
func (g *Estimator) Generate(ctx context.Context, req Request) (*boq.Estimate, error) {
	if isBlank(req.Description) {
		return nil, fmt.Errorf("project description is empty")
	}

	parts := []*genai.Part{{Text: taskPrompt(req)}}
	if req.File != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.File.MIMEType,
				Data:     req.File.Data,
			},
		})
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt(req.Country)}},
		},
		Temperature: genai.Ptr[float32](0.05),
		TopP:        genai.Ptr[float32](0.8),
		Tools:       []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := g.generateWithRetry(ctx, parts, config)
	if err != nil {
		return nil, Classify(err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	payload, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	estimate, err := boq.DecodeEstimate(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("model returned an invalid estimate: %w", err)
	}

	// the model is not trusted for currency fields
	estimate.SyncCurrency(req.Country)
	estimate.ProjectSummary.MeasurementStandard = req.Standard
	estimate.Sources = groundingSources(resp)
	return estimate, nil
}

func (g *Estimator) generateWithRetry(ctx context.Context, parts []*genai.Part, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{{Parts: parts, Role: genai.RoleUser}}

	delay := initialDelay
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := g.client.Models.GenerateContent(ctx, g.Model, contents, config)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !isQuotaError(err) || attempt == maxRetries {
			return nil, err
		}
		log.Printf("quota exceeded, retrying in %s (%d retries left)", delay, maxRetries-attempt)
		g.sleep(delay)
		delay *= 2
	}
	return nil, lastErr
}

// groundingSources collects the web citations attached to the response.
func groundingSources(resp *genai.GenerateContentResponse) []boq.Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var sources []boq.Source
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		sources = append(sources, boq.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return sources
}
