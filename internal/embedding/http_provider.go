package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type httpProvider struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// NewHTTPProvider returns a Provider backed by the external embedding
// service. Returns nil when no base URL is configured, which callers treat as
// "semantic signal disabled".
func NewHTTPProvider(baseURL string, logger *log.Logger) Provider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (p *httpProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	if p == nil || p.client == nil {
		return nil, errors.New("nil embedding provider")
	}
	endpoint := p.baseURL + "/embed"

	b, err := json.Marshal(embedRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("embed failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if p.logger != nil {
			p.logger.Printf("[Embedding] Embed error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return nil, err
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Embedding) == 0 {
		return nil, errors.New("empty embedding")
	}
	return out.Embedding, nil
}

var _ Provider = (*httpProvider)(nil)
