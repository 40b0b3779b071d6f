// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package handlers contains the http handlers for the geojson server.
package handlers

import (
	"net/http"
)

// queryOptions collapses the request query string into a map, keeping the
// first value for each parameter.
func queryOptions(r *http.Request) map[string]interface{} {
	options := map[string]interface{}{}
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			options[name] = values[0]
		}
	}
	return options
}
