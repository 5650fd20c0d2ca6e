package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"BalanceSentinel/internal/model"
)

// HTTPSource fetches a snapshot document (JSON or YAML) from a REST endpoint,
// e.g. a budgeting app's export URL.
type HTTPSource struct {
	URL    string
	APIKey string
	Client *http.Client
}

// NewHTTPSource creates a source with optional proxy support.
func NewHTTPSource(endpoint, apiKey, proxyURL string) *HTTPSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPSource{
		URL:    endpoint,
		APIKey: apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// maxErrorBody caps how much of a failed response is quoted in the error.
const maxErrorBody = 256

func (h *HTTPSource) Name() string { return "http" }

func (h *HTTPSource) Load(ctx context.Context) (model.FinancialSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return model.FinancialSnapshot{}, err
	}
	if h.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.APIKey)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := h.Client.Do(req)
	if err != nil {
		return model.FinancialSnapshot{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return model.FinancialSnapshot{}, fmt.Errorf("read snapshot body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBody {
			body = append(body[:maxErrorBody:maxErrorBody], "..."...)
		}
		return model.FinancialSnapshot{}, fmt.Errorf("fetch snapshot: status %d, body: %s", resp.StatusCode, strings.ToValidUTF8(string(body), ""))
	}
	return ParseSnapshot(body)
}
