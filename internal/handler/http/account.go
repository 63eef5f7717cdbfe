// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/resistance-accounts/internal/app"
	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/internal/utils"
	"github.com/MKhiriev/resistance-accounts/models"
)

// maxCredentialsBodyBytes caps the body of /create_account and /login.
const maxCredentialsBodyBytes = 4 << 10

// createAccount handles POST /create_account.
func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	credentials, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	if err := h.services.AccountService.Register(r.Context(), credentials); err != nil {
		writeError(w, r, err, credentials.Username)
		return
	}

	writeMessage(w, r, app.MsgAccountCreated, http.StatusCreated)
}

// login handles POST /login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	credentials, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	info, err := h.services.AccountService.Authenticate(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err, credentials.Username)
		return
	}

	if _, err = utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "login").Msg("error writing response")
	}
}

// getAccountInfo handles GET /getAccountInfo?username=.
func (h *Handler) getAccountInfo(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeMessage(w, r, app.MsgMissingUsernameParam, http.StatusBadRequest)
		return
	}

	profile, err := h.services.AccountService.GetProfile(r.Context(), username)
	if err != nil {
		writeError(w, r, err, username)
		return
	}

	if _, err = utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getAccountInfo").Msg("error writing response")
	}
}

// decodeCredentials reads a JSON {username, password} body. On failure it has
// already written the 400 response and reports false.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, bool) {
	log := logger.FromRequest(r)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !isJSONMediaType(mediaType) {
		log.Warn().Str("content_type", r.Header.Get("Content-Type")).Msg("request body is not JSON")
		writeMessage(w, r, app.MsgMissingJSON, http.StatusBadRequest)
		return models.Credentials{}, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCredentialsBodyBytes)

	var credentials models.Credentials
	if err = json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, r, app.MsgMissingJSON, http.StatusBadRequest)
		return models.Credentials{}, false
	}

	if !credentials.IsComplete() {
		writeMessage(w, r, app.MsgMissingCredentials, http.StatusBadRequest)
		return models.Credentials{}, false
	}

	return credentials, true
}

// isJSONMediaType accepts application/json and structured syntax suffix types
// such as application/vnd.api+json.
func isJSONMediaType(mediaType string) bool {
	if mediaType == "application/json" {
		return true
	}
	subtype, ok := strings.CutPrefix(mediaType, "application/")
	return ok && strings.HasSuffix(subtype, "+json") && len(subtype) > len("+json")
}

func writeError(w http.ResponseWriter, r *http.Request, err error, username string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("username", username).Msg("request failed")
	}

	writeMessage(w, r, messageFromError(err, username), status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, msg string, status int) {
	if _, err := utils.WriteJSON(w, models.MessageResponse{Msg: msg}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
