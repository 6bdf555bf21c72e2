// Package handlers implements the REST API endpoint handlers for cfadmin.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, goroutines)
//
// Token lifecycle:
//   - GET /api/v1/token - Whether an API token is configured
//   - PUT /api/v1/token - Verify and store a new Cloudflare API token
//   - POST /api/v1/token/verify - Re-verify the stored token
//   - DELETE /api/v1/token - Forget the stored token
//
// DNS management:
//   - GET /api/v1/zones - List all zones visible to the token
//   - GET /api/v1/zones/:zoneID/records - List a zone's DNS records
//   - POST /api/v1/zones/:zoneID/records - Create a DNS record
//   - PUT /api/v1/zones/:zoneID/records/:recordID - Update a DNS record
//   - DELETE /api/v1/zones/:zoneID/records/:recordID - Delete a DNS record
//
// Settings:
//   - GET /api/v1/settings/appearance - Appearance preference
//   - PUT /api/v1/settings/appearance - Set appearance preference
//
// All endpoints except /health require the X-API-Key header when an API
// key is configured. The daemon binds to localhost by default; it holds
// account credentials and must not face untrusted networks.
//
// @title cfadmin Management API
// @version 1.0
// @description REST API for managing Cloudflare DNS records through a local daemon.
//
// @host localhost:8787
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mdewolf/cfadmin/internal/cloudflare"
	"github.com/mdewolf/cfadmin/internal/config"
	"github.com/mdewolf/cfadmin/internal/store"
)

// SecretStore is the slice of the store the handlers need: get/set plus
// idempotent delete of named string secrets.
type SecretStore interface {
	GetSecret(key string) (string, bool, error)
	SetSecret(key, value string) error
	DeleteSecret(key string) error
}

var _ SecretStore = (*store.Store)(nil)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	store     SecretStore
	logger    *slog.Logger
	startTime time.Time

	// client is rebuilt whenever the token changes; nil means no token.
	mu     sync.RWMutex
	client *cloudflare.Client
}

// New creates a Handler. The Cloudflare client starts out nil until a
// token is restored from the store or set through the API.
func New(cfg *config.Config, st SecretStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		store:     st,
		logger:    logger,
		startTime: time.Now(),
	}
}

// RestoreClient builds the live client from a previously stored token, if
// any. The token is not re-verified here; a revoked token surfaces on the
// first call that uses it.
func (h *Handler) RestoreClient() error {
	token, ok, err := h.store.GetSecret(store.KeyAPIToken)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	h.setClient(h.newClient(token))
	return nil
}

// newClient constructs a Cloudflare client honoring the configured
// timeout and base URL override.
func (h *Handler) newClient(token string) *cloudflare.Client {
	opts := []cloudflare.Option{
		cloudflare.WithHTTPClient(httpClientWithTimeout(h.cfg.CloudflareTimeout())),
	}
	if h.cfg.Cloudflare.BaseURL != "" {
		opts = append(opts, cloudflare.WithBaseURL(h.cfg.Cloudflare.BaseURL))
	}
	return cloudflare.New(token, opts...)
}

func (h *Handler) setClient(c *cloudflare.Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.client = c
}

func (h *Handler) getClient() *cloudflare.Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.client
}
