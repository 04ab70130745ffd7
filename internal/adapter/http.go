// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/cycle-count-relay/internal/config"
	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

type httpUpstreamAdapter struct {
	oauth      *oauth2.Config
	authClient *http.Client
	password   string

	api *resty.Client

	logger *logger.Logger
}

// NewHTTPUpstreamAdapter constructs the HTTP implementation of
// [UpstreamAdapter] from the upstream configuration.
//
// Token requests use a client bounded by cfg.AuthTimeout, API requests one
// bounded by cfg.RequestTimeout. Both honour cfg.InsecureSkipVerify.
//
// Returns an error if either upstream URL cannot be parsed.
func NewHTTPUpstreamAdapter(cfg config.Upstream, logger *logger.Logger) (UpstreamAdapter, error) {
	authURL, err := normalizeBaseURL(cfg.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream auth url: %w", err)
	}
	apiURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream api url: %w", err)
	}

	if cfg.InsecureSkipVerify {
		logger.Warn().Msg("TLS certificate verification towards the upstream is DISABLED")
	}

	api := resty.NewWithClient(newHTTPClient(cfg.RequestTimeout, cfg.InsecureSkipVerify)).
		SetBaseURL(apiURL)

	return &httpUpstreamAdapter{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  authURL + tokenPath,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		authClient: newHTTPClient(cfg.AuthTimeout, cfg.InsecureSkipVerify),
		password:   cfg.Password,
		api:        api,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchToken implements [UpstreamAdapter]. It runs the OAuth2 password grant
// for Username(org) with HTTP Basic client authentication.
func (h *httpUpstreamAdapter) FetchToken(ctx context.Context, org string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, h.authClient)

	token, err := h.oauth.PasswordCredentialsToken(ctx, Username(org), h.password)
	if err != nil {
		return "", mapTokenError(err)
	}

	return token.AccessToken, nil
}

// Forward implements [UpstreamAdapter].
func (h *httpUpstreamAdapter) Forward(ctx context.Context, op models.Operation, org, token string, payload []byte) (models.UpstreamResponse, error) {
	path, ok := ForwardPath(op)
	if !ok {
		return models.UpstreamResponse{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}

	resp, err := h.api.R().
		SetContext(ctx).
		SetHeaders(BuildHeaders(org, token)).
		SetBody(payload).
		Post(path)
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("%w: %w", ErrUpstreamTransport, err)
	}

	return toUpstreamResponse(resp), nil
}

// GetInventory implements [UpstreamAdapter]. The location is sent as
// LocationId="<locationID>".
func (h *httpUpstreamAdapter) GetInventory(ctx context.Context, org, token, locationID string) (models.UpstreamResponse, error) {
	resp, err := h.api.R().
		SetContext(ctx).
		SetHeaders(BuildHeaders(org, token)).
		SetQueryParam(locationQueryParam, `"`+locationID+`"`).
		Get(inventoryPath)
	if err != nil {
		return models.UpstreamResponse{}, fmt.Errorf("%w: %w", ErrUpstreamTransport, err)
	}

	return toUpstreamResponse(resp), nil
}

func toUpstreamResponse(resp *resty.Response) models.UpstreamResponse {
	return models.UpstreamResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}
}
