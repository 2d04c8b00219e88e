package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aretw0/sortium/pkg/domain"
)

const (
	DefaultBaseURL      = "https://api.openai.com/v1"
	DefaultModel        = "gpt-3.5-turbo-instruct"
	completionsEndpoint = "/completions"

	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_API_BASE_URL"
)

var (
	// ErrMissingAPIKey is returned when no credential is configured.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")
	// ErrTransport covers network failures and non-2xx responses.
	ErrTransport = errors.New("completion request failed")
	// ErrMalformedResponse is returned when the body does not decode into a completion.
	ErrMalformedResponse = errors.New("malformed completion response")
)

// Params are the static generation parameters sent with every request.
// They never depend on conversation state.
type Params struct {
	Model            string  `mapstructure:"model"`
	Suffix           string  `mapstructure:"suffix"`
	Temperature      float64 `mapstructure:"temperature"`
	MaxTokens        int     `mapstructure:"max_tokens"`
	TopP             float64 `mapstructure:"top_p"`
	FrequencyPenalty float64 `mapstructure:"frequency_penalty"`
	PresencePenalty  float64 `mapstructure:"presence_penalty"`
}

// DefaultParams returns the generation parameters used by the dialog runner.
func DefaultParams() Params {
	return Params{
		Model:            DefaultModel,
		Suffix:           "\n\n",
		Temperature:      0.7,
		MaxTokens:        256,
		TopP:             1,
		FrequencyPenalty: 0,
		PresencePenalty:  0,
	}
}

// Classifier implements ports.Classifier over the OpenAI text-completions API.
type Classifier struct {
	apiKey  string
	baseURL string
	params  Params
	client  *http.Client
	logger  *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithAPIKey sets the API key, overriding OPENAI_API_KEY.
func WithAPIKey(apiKey string) Option {
	return func(c *Classifier) {
		c.apiKey = apiKey
	}
}

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Classifier) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithParams overrides the generation parameters.
func WithParams(p Params) Option {
	return func(c *Classifier) {
		c.params = p
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Classifier) {
		c.client = client
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Classifier) {
		c.client = &http.Client{Timeout: d}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a classifier. The credential defaults to $OPENAI_API_KEY and the base
// URL to $OPENAI_API_BASE_URL; a missing credential is an error.
func New(opts ...Option) (*Classifier, error) {
	c := &Classifier{
		apiKey:  os.Getenv(EnvAPIKey),
		baseURL: DefaultBaseURL,
		params:  DefaultParams(),
		client:  &http.Client{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if env := os.Getenv(EnvBaseURL); env != "" {
		c.baseURL = strings.TrimRight(env, "/")
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return c, nil
}

// Classify sends the rendered prompt and returns the first candidate's text, trimmed.
func (c *Classifier) Classify(ctx context.Context, prompt string) (string, error) {
	req := completionRequest{
		Model:            c.params.Model,
		Prompt:           prompt,
		Suffix:           c.params.Suffix,
		Temperature:      c.params.Temperature,
		MaxTokens:        c.params.MaxTokens,
		TopP:             c.params.TopP,
		FrequencyPenalty: c.params.FrequencyPenalty,
		PresencePenalty:  c.params.PresencePenalty,
	}

	resp, err := doPostSync[completionResponse](ctx, c.client, c.logger, c.baseURL+completionsEndpoint, c.apiKey, req)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w (model %s)", domain.ErrNoAnswer, c.params.Model)
	}

	if resp.Usage != nil {
		c.logger.Debug("completion usage",
			"model", resp.Model,
			"prompt_tokens", resp.Usage.PromptTokens,
			"completion_tokens", resp.Usage.CompletionTokens,
		)
	}

	return strings.TrimSpace(resp.Choices[0].Text), nil
}
