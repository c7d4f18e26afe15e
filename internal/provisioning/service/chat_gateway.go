package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	entitlementDomain "github.com/allisson/iga/internal/entitlement/domain"
	identityDomain "github.com/allisson/iga/internal/identity/domain"
	provisioningDomain "github.com/allisson/iga/internal/provisioning/domain"
)

const (
	// DefaultTimeout bounds a chat workspace call when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20
)

// ChatGatewayConfig configures the chat workspace gateway.
type ChatGatewayConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// HTTPClient replaces the default client. Its own Timeout is left untouched.
	HTTPClient *http.Client
}

type chatGateway struct {
	baseURL string
	token   string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
}

// NewChatGateway returns a gateway that upserts chat workspace accounts. An empty
// BaseURL yields a gateway that skips every identity.
func NewChatGateway(cfg ChatGatewayConfig, logger *slog.Logger) Gateway {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return NewNoopGateway(logger)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &chatGateway{
		baseURL: baseURL,
		token:   cfg.Token,
		timeout: timeout,
		client:  client,
		logger:  logger,
	}
}

// Provision creates or updates the chat account keyed by the identity's primary
// email and sets its channel memberships. Identities without a chat grant are
// skipped without any I/O.
func (g *chatGateway) Provision(
	ctx context.Context,
	identity *identityDomain.Identity,
) *provisioningDomain.Result {
	target := entitlementDomain.TargetChat

	grant, ok := identity.Entitlements.Grant(target)
	if !ok {
		return provisioningDomain.NewSkippedResult(target)
	}

	account := newAccount(identity, grant)

	accountID, err := g.upsertAccount(ctx, account)
	if err != nil {
		g.logger.Warn("chat workspace provisioning failed",
			slog.Int64("identity_id", identity.ID),
			slog.String("email", account.Email),
			slog.Any("error", err),
		)
		return provisioningDomain.NewFailedResult(target, err.Error())
	}

	g.logger.Info("chat workspace account provisioned",
		slog.Int64("identity_id", identity.ID),
		slog.String("email", account.Email),
		slog.Int("channel_count", len(account.Channels)),
	)

	return &provisioningDomain.Result{
		Target:              target,
		Success:             true,
		DownstreamAccountID: accountID,
	}
}

func (g *chatGateway) upsertAccount(ctx context.Context, account *provisioningDomain.Account) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	body, err := json.Marshal(account)
	if err != nil {
		return "", fmt.Errorf("failed to encode account: %w", err)
	}

	endpoint := g.baseURL + "/v1/accounts/" + url.PathEscape(account.Email)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat workspace request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat workspace request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read chat workspace response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("chat workspace returned status %d", resp.StatusCode)
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return "", nil
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("invalid chat workspace response: %w", err)
	}

	return out.ID, nil
}

func newAccount(identity *identityDomain.Identity, grant entitlementDomain.Grant) *provisioningDomain.Account {
	channels := make([]string, len(grant.Channels))
	copy(channels, grant.Channels)

	return &provisioningDomain.Account{
		Email:       identity.PrimaryEmail,
		FirstName:   identity.FirstName,
		LastName:    identity.LastName,
		DisplayName: identity.DisplayName,
		Channels:    channels,
	}
}
