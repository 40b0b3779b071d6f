// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"net/http"
	"strings"
)

// CorsMiddleware sets the CORS response headers on every response.  The
// document endpoints accept POST with a JSON body and answer preflight
// requests with OPTIONS, so those are the methods to advertise.
var CorsMiddleware = func(corsOrigin string, corsCredentials string, corsMethods []string) func(h http.Handler) http.Handler {
	allowMethods := strings.Join(corsMethods, ", ")
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", corsOrigin)
			w.Header().Set("Access-Control-Allow-Credentials", corsCredentials)
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			h.ServeHTTP(w, r)
		})
	}
}
