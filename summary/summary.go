// Package summary is the message generator: it asks Gemini for a short
// Spanish status note the customer sees above the tracker.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andesmotors/entregas/fields"
	"github.com/andesmotors/entregas/status"
	"google.golang.org/genai"
)

// Client wraps the Gemini API for status summaries.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a summarizer against the Gemini API.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{client: client, model: model, timeout: timeout}, nil
}

// Summarize produces a short natural-language summary for the record. The
// caller treats any error here the same as a lookup failure.
func (c *Client) Summarize(ctx context.Context, rec *fields.Record) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(BuildPrompt(rec)), nil)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("empty summary from model")
	}
	return text, nil
}

// BuildPrompt renders the instruction sent to the model. Kept as a pure
// function so the wording is testable without network.
func BuildPrompt(rec *fields.Record) string {
	tracker := status.BuildTracker(rec)

	var b strings.Builder
	b.WriteString("Sos el asistente de posventa de una concesionaria de autos. ")
	b.WriteString("Escribí un único párrafo corto, en español rioplatense y tono cordial, ")
	b.WriteString("resumiendo el estado de la entrega para el cliente. ")
	b.WriteString("No inventes fechas ni datos que no estén acá.\n\n")
	fmt.Fprintf(&b, "Cliente: %s\n", rec.Customer)
	fmt.Fprintf(&b, "Vendedor: %s\n", rec.Salesperson)
	if rec.SaleDate != "" {
		fmt.Fprintf(&b, "Fecha de venta: %s\n", rec.SaleDate)
	}
	for _, step := range tracker.Steps {
		fmt.Fprintf(&b, "%s: %s (%s)\n", step.Label, step.Detail, step.Status)
	}
	return b.String()
}
