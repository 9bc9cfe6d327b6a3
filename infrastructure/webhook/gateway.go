package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"relay-desk/domain/relay"
)

// Gateway is the delivering side of the transport boundary: outbound text and
// selection affordances are handed to the chat gateway over HTTP. The client
// timeout is the only bound on a hung delivery; the engine treats any failure
// uniformly and never retries.
type Gateway struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewGateway(baseURL string, timeout time.Duration, log *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

type deliverRequest struct {
	RecipientID int64  `json:"recipient_id"`
	Text        string `json:"text"`
}

type candidatePayload struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

type selectionRequest struct {
	RecipientID int64              `json:"recipient_id"`
	Prompt      string             `json:"prompt"`
	Candidates  []candidatePayload `json:"candidates"`
}

func (g *Gateway) Deliver(ctx context.Context, recipientID int64, text string) error {
	return g.post(ctx, "/send", deliverRequest{RecipientID: recipientID, Text: text})
}

func (g *Gateway) PresentSelection(ctx context.Context, recipientID int64, prompt string, candidates []relay.Candidate) error {
	payload := selectionRequest{RecipientID: recipientID, Prompt: prompt}
	for _, c := range candidates {
		payload.Candidates = append(payload.Candidates, candidatePayload{ID: c.ID, DisplayName: c.DisplayName})
	}
	return g.post(ctx, "/selections", payload)
}

func (g *Gateway) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway %s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}
