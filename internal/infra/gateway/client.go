package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/infra"
	"assistance-console/internal/pkg/config"

	"github.com/google/uuid"
)

// LookupItem is one opaque reference-data entry (zone, intervention
// type, technician). The console only resolves ids to labels and back.
type LookupItem struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// Client talks to the backend record API. Full-replace semantics on
// Put: the backend overwrites the stored record with the body as sent,
// so callers must always resend every field. Timeouts come from the
// transport config; there is no retry layer here by design.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (c *Client) GetIntervention(ctx context.Context, id uuid.UUID) (*intervention.Record, error) {
	var rec intervention.Record
	if err := c.do(ctx, http.MethodGet, "/interventions/"+id.String(), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) PutIntervention(ctx context.Context, id uuid.UUID, rec *intervention.Record) error {
	return c.do(ctx, http.MethodPut, "/interventions/"+id.String(), rec, nil)
}

func (c *Client) CreateIntervention(ctx context.Context, rec *intervention.Record) (*intervention.Record, error) {
	var created intervention.Record
	if err := c.do(ctx, http.MethodPost, "/interventions", rec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListInterventions fetches the records whose date falls inside
// [from, to], the calendar's visible window.
func (c *Client) ListInterventions(ctx context.Context, from, to time.Time) ([]*intervention.Record, error) {
	q := url.Values{}
	q.Set("date_from", from.Format("2006-01-02"))
	q.Set("date_to", to.Format("2006-01-02"))

	var out struct {
		Interventions []*intervention.Record `json:"interventions"`
	}
	if err := c.do(ctx, http.MethodGet, "/interventions?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Interventions, nil
}

func (c *Client) ListLookup(ctx context.Context, kind string) ([]LookupItem, error) {
	var out struct {
		Items []LookupItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/lookups/"+kind, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindTransport, method+" "+path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, method+" "+path, nil)
	case resp.StatusCode == http.StatusUnauthorized:
		return infra.WrapGatewayErr(c.logger, infra.KindUnauthorized, method+" "+path, nil)
	case resp.StatusCode >= 400:
		return infra.WrapGatewayErr(c.logger, infra.KindTransport,
			fmt.Sprintf("%s %s: status %d", method, path, resp.StatusCode), nil)
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "decode response body", err)
	}
	return nil
}
