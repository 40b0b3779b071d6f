// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package middleware

import (
	"net/http"
)

import (
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
)

var LogMiddleware = func(logger *gsl.Logger) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info(map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
				"host":   r.RemoteAddr,
			})
			h.ServeHTTP(w, r)
		})
	}
}
