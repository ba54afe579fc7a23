// Package analysis sends a picked depth interval to the interpretation
// service and brings back its findings.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andareed/siftly-welllog/logging"
)

// Request is one analysis job. Point picks have StartDepth == EndDepth.
type Request struct {
	StartDepth float64 `json:"start_depth"`
	EndDepth   float64 `json:"end_depth"`
	FocusNote  string  `json:"focus_note,omitempty"`
	SessionID  string  `json:"-"`
}

type Message struct {
	Agent      string  `json:"agent"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
	IsFinal    bool    `json:"is_final"`
}

type Decision struct {
	Decision   string  `json:"decision"`
	Confidence float64 `json:"confidence"`
	DepthRange string  `json:"depth_range"`
}

type Response struct {
	Success       bool      `json:"success"`
	Messages      []Message `json:"messages"`
	FinalDecision *Decision `json:"final_decision"`
}

// Requester runs an analysis for a depth interval.
type Requester interface {
	Analyze(ctx context.Context, req Request) (*Response, error)
}

const DefaultTimeout = 60 * time.Second

// HTTPClient posts requests to <BaseURL>/api/analyze.
type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *HTTPClient) Analyze(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode analysis request: %w", err)
	}
	endpoint := c.BaseURL + "/api/analyze"
	if req.SessionID != "" {
		endpoint += "?" + url.Values{"session_id": {req.SessionID}}.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logging.Infof("analysis: POST %s [%g, %g]", endpoint, req.StartDepth, req.EndDepth)
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("analysis service returned %s: %s", resp.Status, errorDetail(data))
	}
	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if !out.Success {
		return &out, fmt.Errorf("analysis service reported failure")
	}
	return &out, nil
}

// errorDetail pulls the "detail" field out of an error body when present.
func errorDetail(data []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(data, &e) == nil && e.Detail != "" {
		return e.Detail
	}
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

// Nop stands in when no service is configured. It only logs.
type Nop struct{}

func (Nop) Analyze(_ context.Context, req Request) (*Response, error) {
	logging.Infof("analysis: no service configured, dropping [%g, %g] %q", req.StartDepth, req.EndDepth, req.FocusNote)
	return &Response{Success: true}, nil
}

// New returns an HTTPClient for baseURL, or Nop when it is empty.
func New(baseURL string) Requester {
	if strings.TrimSpace(baseURL) == "" {
		return Nop{}
	}
	return NewHTTPClient(baseURL)
}

// Summary is a one-line description for the footer.
func (r *Response) Summary() string {
	if r == nil {
		return ""
	}
	if r.FinalDecision != nil {
		return fmt.Sprintf("%s (%.0f%%)", r.FinalDecision.Decision, r.FinalDecision.Confidence*100)
	}
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].IsFinal {
			return r.Messages[i].Content
		}
	}
	return fmt.Sprintf("%d messages", len(r.Messages))
}
