package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"recruitos/internal/config"
	"recruitos/internal/domain"
	"recruitos/internal/port"
)

const (
	defaultEndpoint = "https://api.ocr.space/parse/image"

	// Provider exit codes.
	exitSuccess = 1
)

var mimeByFiletype = map[string]string{
	"PDF": "application/pdf",
	"PNG": "image/png",
	"JPG": "image/jpeg",
	"GIF": "image/gif",
}

// Client implements port.OCRClient against an OCR.space-compatible provider.
type Client struct {
	apiKey   string
	endpoint string
	language string
	client   *http.Client
}

// NewClient creates an OCR client from provider config.
func NewClient(cfg *config.OCRConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return newClient(cfg, endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.OCRConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OCRConfig, endpoint string) *Client {
	language := cfg.Language
	if language == "" {
		language = "eng"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		language: language,
		client:   &http.Client{Timeout: timeout},
	}
}

// Recognize submits one recognition attempt. The document travels as a base64
// data URI; the provider responds with an exit code and per-page parsed text.
func (c *Client) Recognize(ctx context.Context, req port.OCRRequest) (*port.OCRResult, error) {
	mime := mimeByFiletype[req.Filetype]
	if mime == "" {
		mime = "application/octet-stream"
	}
	encoded := base64.StdEncoding.EncodeToString(req.Payload)

	form := url.Values{}
	form.Set("base64Image", fmt.Sprintf("data:%s;base64,%s", mime, encoded))
	form.Set("language", c.language)
	form.Set("filetype", req.Filetype)
	form.Set("OCREngine", strconv.Itoa(int(req.Engine)))
	form.Set("detectOrientation", strconv.FormatBool(req.DetectOrientation))
	form.Set("scale", strconv.FormatBool(req.Scale))
	form.Set("isTable", strconv.FormatBool(req.TableMode))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling ocr API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.OCRAPIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return parseResponse(respBody, req.Engine)
}

// apiResponse models the provider response envelope.
type apiResponse struct {
	ParsedResults []struct {
		ParsedText        string `json:"ParsedText"`
		ErrorMessage      string `json:"ErrorMessage"`
		FileParseExitCode int    `json:"FileParseExitCode"`
	} `json:"ParsedResults"`
	OCRExitCode           int             `json:"OCRExitCode"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
}

func parseResponse(body []byte, engine port.OCREngine) (*port.OCRResult, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding ocr response: %w", err)
	}

	if resp.IsErroredOnProcessing || resp.OCRExitCode != exitSuccess {
		return nil, &domain.OCRExitError{
			ExitCode: resp.OCRExitCode,
			Message:  providerErrorMessage(resp.ErrorMessage),
		}
	}

	var b strings.Builder
	for _, page := range resp.ParsedResults {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(page.ParsedText)
	}

	return &port.OCRResult{
		Text:     b.String(),
		ExitCode: resp.OCRExitCode,
		Engine:   engine,
	}, nil
}

// providerErrorMessage flattens the provider's ErrorMessage field, which is a
// string for some failures and an array of strings for others.
func providerErrorMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "unknown provider error"
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return string(raw)
}
