package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"med-dose-tracker/internal/platform/httpclient"
	"med-dose-tracker/internal/ports/notify"
)

var ErrNotConfigured = errors.New("webhook notifier not configured")

// Config del notificador por webhook.
// URL normalmente vendrá de env vars en el servicio que lo instancie.
type Config struct {
	URL string

	// Opcional: API key que se manda en "X-Api-Key".
	APIKey string

	// Timeout HTTP.
	Timeout time.Duration
}

// Client implementa notify.Scheduler posteando cada dosis vencida como JSON
// a la URL configurada. Quien reciba el POST agenda/envía el push real.
type Client struct {
	url    string
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		url:    strings.TrimSpace(cfg.URL),
		apiKey: strings.TrimSpace(cfg.APIKey),
		http:   httpclient.New(timeout),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.url != ""
}

func (c *Client) Schedule(ctx context.Context, n notify.DoseNotification) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{"X-Api-Key": c.apiKey}
	}

	return c.http.DoJSON(ctx, http.MethodPost, c.url, headers, n, nil)
}
