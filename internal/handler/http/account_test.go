// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resistance-accounts/internal/crypto"
	"github.com/MKhiriev/resistance-accounts/internal/mock"
	"github.com/MKhiriev/resistance-accounts/internal/service"
	"github.com/MKhiriev/resistance-accounts/internal/store"
	"github.com/MKhiriev/resistance-accounts/models"
)

const jsonType = "application/json"

func decodeMsg(t *testing.T, body []byte) string {
	t.Helper()

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Msg
}

// ── POST /create_account ─────────────────────────────────────────────────────

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		setup       func(m *mock.MockAccountService)
		wantStatus  int
		wantMsg     string
	}{
		{
			name:        "created",
			contentType: jsonType,
			body:        `{"username":"alice","password":"pw1"}`,
			setup: func(m *mock.MockAccountService) {
				m.EXPECT().Register(gomock.Any(), models.Credentials{Username: "alice", Password: "pw1"}).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    "Account created successfully.",
		},
		{
			name:        "charset parameter accepted",
			contentType: "application/json; charset=utf-8",
			body:        `{"username":"alice","password":"pw1"}`,
			setup: func(m *mock.MockAccountService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    "Account created successfully.",
		},
		{
			name:        "json suffix media type accepted",
			contentType: "application/vnd.api+json",
			body:        `{"username":"alice","password":"pw1"}`,
			setup: func(m *mock.MockAccountService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    "Account created successfully.",
		},
		{
			name:        "bare json suffix rejected",
			contentType: "application/+json",
			body:        `{"username":"alice","password":"pw1"}`,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     "Missing JSON in request",
		},
		{
			name:        "oversized body",
			contentType: jsonType,
			body:        `{"username":"` + strings.Repeat("u", maxCredentialsBodyBytes) + `","password":"pw1"}`,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     "Missing JSON in request",
		},
		{
			name:        "taken",
			contentType: jsonType,
			body:        `{"username":"alice","password":"other"}`,
			setup: func(m *mock.MockAccountService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(service.ErrUsernameTaken)
			},
			wantStatus: http.StatusConflict,
			wantMsg:    "Username is already taken.",
		},
		{
			name:        "password too long",
			contentType: jsonType,
			body:        `{"username":"alice","password":"pw1"}`,
			setup: func(m *mock.MockAccountService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: %w", service.ErrInvalidInput, crypto.ErrPasswordTooLong))
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Password is too long",
		},
		{
			name:        "internal failure hides detail",
			contentType: jsonType,
			body:        `{"username":"alice","password":"pw1"}`,
			setup: func(m *mock.MockAccountService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: %w", service.ErrInternal, store.ErrExecutingQuery))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:        "form body",
			contentType: "application/x-www-form-urlencoded",
			body:        "username=alice&password=pw1",
			wantStatus:  http.StatusBadRequest,
			wantMsg:     "Missing JSON in request",
		},
		{
			name:       "no content type",
			body:       `{"username":"alice","password":"pw1"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Missing JSON in request",
		},
		{
			name:        "malformed JSON",
			contentType: jsonType,
			body:        `{"username":`,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     "Missing JSON in request",
		},
		{
			name:        "missing password",
			contentType: jsonType,
			body:        `{"username":"alice"}`,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     "Missing username or password",
		},
		{
			name:        "empty username",
			contentType: jsonType,
			body:        `{"username":"","password":"pw1"}`,
			wantStatus:  http.StatusBadRequest,
			wantMsg:     "Missing username or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, accounts := newTestRouter(t)
			if tt.setup != nil {
				tt.setup(accounts)
			}

			rec := serve(router, http.MethodPost, "/create_account", tt.contentType, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMsg(t, rec.Body.Bytes()))
		})
	}
}

// ── POST /login ──────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	router, accounts := newTestRouter(t)
	accounts.EXPECT().
		Authenticate(gomock.Any(), models.Credentials{Username: "alice", Password: "pw1"}).
		Return(models.AccountInfo{ID: 1, Username: "alice"}, nil)

	rec := serve(router, http.MethodPost, "/login", jsonType, `{"username":"alice","password":"pw1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"username":"alice"}`, rec.Body.String())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "auth failed", err: service.ErrAuthFailed, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid username or password"},
		{name: "internal", err: fmt.Errorf("%w: %w", service.ErrInternal, errors.New("db down")), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{name: "unclassified", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, accounts := newTestRouter(t)
			accounts.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.AccountInfo{}, tt.err)

			rec := serve(router, http.MethodPost, "/login", jsonType, `{"username":"alice","password":"bad"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMsg(t, rec.Body.Bytes()))
			assert.NotContains(t, rec.Body.String(), "db down")
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/login", jsonType, `{"password":"pw1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing username or password", decodeMsg(t, rec.Body.Bytes()))
}

// ── GET /getAccountInfo ──────────────────────────────────────────────────────

func TestGetAccountInfo_Success(t *testing.T) {
	router, accounts := newTestRouter(t)
	accounts.EXPECT().GetProfile(gomock.Any(), "bob").
		Return(models.Profile{ID: 2, PlayerStats: models.PlayerStats{TotalGames: 5, GamesWon: 3}}, nil)

	rec := serve(router, http.MethodGet, "/getAccountInfo?username=bob", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 20)
	assert.EqualValues(t, 2, body["id"])
	assert.EqualValues(t, 5, body["total_games"])
	assert.EqualValues(t, 3, body["games_won"])
	assert.NotContains(t, body, "password_hash")
	assert.NotContains(t, body, "player_name")
}

func TestGetAccountInfo_NotFound(t *testing.T) {
	router, accounts := newTestRouter(t)
	accounts.EXPECT().GetProfile(gomock.Any(), "carol").Return(models.Profile{}, service.ErrNotFound)

	rec := serve(router, http.MethodGet, "/getAccountInfo?username=carol", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Account not found for username: carol", decodeMsg(t, rec.Body.Bytes()))
}

func TestGetAccountInfo_MissingParam(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, target := range []string{"/getAccountInfo", "/getAccountInfo?username="} {
		rec := serve(router, http.MethodGet, target, "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Missing username query parameter", decodeMsg(t, rec.Body.Bytes()))
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidInput, http.StatusBadRequest},
		{service.ErrUsernameTaken, http.StatusConflict},
		{service.ErrAuthFailed, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", service.ErrNotFound), http.StatusNotFound},
		{service.ErrInternal, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
