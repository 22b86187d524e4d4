// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout    = 15 * time.Second
	sessionCookieName = "billable_hours_session"
)

// Config points the adapter at a server.
type Config struct {
	// BaseURL is the server address, with or without scheme.
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty based [ServerAdapter].
// Redirects are not followed: the login form answers with 303 on success and
// the session cookie arrives with that response.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// Login implements [ServerAdapter]. The server answers a successful login
// with a redirect carrying the session cookie, and a failed one by rendering
// the form again.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Username,
			"password": credentials.Password,
		}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	if resp.StatusCode() != http.StatusSeeOther {
		if err = mapHTTPError(resp); err != nil {
			return err
		}
		return fmt.Errorf("%w: login answered %d", ErrUnexpectedResponse, resp.StatusCode())
	}

	// The client's cookie jar already stored the cookie.
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
			return nil
		}
	}
	return fmt.Errorf("%w: no session cookie in login response", ErrUnexpectedResponse)
}

// CycleStats implements [ServerAdapter].
func (h *httpServerAdapter) CycleStats(ctx context.Context, date time.Time) (models.CycleStats, error) {
	var stats models.CycleStats

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("date", date.Format(models.DateLayout)).
		SetResult(&stats).
		Get("/api/cycle_stats/{date}")
	if err != nil {
		return models.CycleStats{}, fmt.Errorf("cycle stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CycleStats{}, err
	}

	return stats, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return mapHTTPError(resp)
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}
