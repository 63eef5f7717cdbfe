// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed fallback via [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path is known but the method is not. The account
// API answers 404 instead, so a caller probing with the wrong verb learns
// nothing about which paths exist. A request whose method does match a route
// (chi can reach the fallback for such requests when middleware rewrites the
// method) is served by the router as usual.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
