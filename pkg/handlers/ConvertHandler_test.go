// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/request"
)

func TestConvertHandler(t *testing.T) {
	h := &ConvertHandler{BaseHandler: newTestBaseHandler()}
	// a trailing zero altitude normalizes away
	r := httptest.NewRequest("POST", "/geojson/convert", strings.NewReader(`{"type":"Point","coordinates":[102.0,0.5,0.0]}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"Point","coordinates":[102,0.5]}`, w.Body.String())
}

func TestConvertHandlerCache(t *testing.T) {
	h := &ConvertHandler{BaseHandler: newTestBaseHandler()}
	body := `{"type":"Feature","geometry":null,"properties":{},"id":42}`

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/geojson/convert", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"Feature","geometry":null,"properties":{},"id":"42"}`, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("POST", "/geojson/convert", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"Feature","geometry":null,"properties":{},"id":"42"}`, w.Body.String())

	hits := 0
	misses := 0
	for len(h.Requests) > 0 {
		if cr, ok := (<-h.Requests).(request.CacheRequest); ok {
			if cr.Hit {
				hits++
			} else {
				misses++
			}
		}
	}
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestConvertHandlerInvalid(t *testing.T) {
	h := &ConvertHandler{BaseHandler: newTestBaseHandler()}
	r := httptest.NewRequest("POST", "/geojson/convert", strings.NewReader(`{"type":"Point"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"missing required member \"coordinates\""}`, w.Body.String())
}
