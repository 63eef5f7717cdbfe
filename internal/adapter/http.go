package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resistance-accounts/internal/config"
	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/internal/utils"
	"github.com/MKhiriev/resistance-accounts/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter] for the server at cfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client, err := utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// Register implements [ServerAdapter] via POST /create_account.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (string, error) {
	var created models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&created).
		Post("/create_account")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("username", credentials.Username).Msg("account registered")
	return created.Msg, nil
}

// Login implements [ServerAdapter] via POST /login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AccountInfo, error) {
	var info models.AccountInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&info).
		Post("/login")
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountInfo{}, err
	}

	return info, nil
}

// GetAccountInfo implements [ServerAdapter] via GET /getAccountInfo.
func (h *httpServerAdapter) GetAccountInfo(ctx context.Context, username string) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("username", username).
		SetResult(&profile).
		Get("/getAccountInfo")
	if err != nil {
		return models.Profile{}, fmt.Errorf("account info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
