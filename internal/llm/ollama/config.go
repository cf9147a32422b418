// Package ollama implements llm.FieldExtractor against a local Ollama
// server's generate API.
package ollama

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the Ollama client. Zero values fall back to the defaults the
// pipeline is tuned for.
type Config struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration // per-attempt budget; local models are slow
	MaxRetries int

	// Sampling options, kept low-temperature: extraction wants the most
	// likely reading of the document, not variety.
	Temperature float64
	TopP        float64
	TopK        int
	NumPredict  int
	NumCtx      int
}

// DefaultConfig returns the tuned extraction settings.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "http://localhost:11434",
		Model:       "gemma3:4b",
		Timeout:     180 * time.Second,
		MaxRetries:  3,
		Temperature: 0.1,
		TopP:        0.9,
		TopK:        40,
		NumPredict:  2048,
		NumCtx:      8192,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = d.MaxRetries
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
	if c.TopP <= 0 {
		c.TopP = d.TopP
	}
	if c.TopK <= 0 {
		c.TopK = d.TopK
	}
	if c.NumPredict <= 0 {
		c.NumPredict = d.NumPredict
	}
	if c.NumCtx <= 0 {
		c.NumCtx = d.NumCtx
	}
	return c
}

// Client talks to one Ollama server.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}
