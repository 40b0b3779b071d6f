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
	"time"
)

import (
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/request"
)

func newTestBaseHandler() *BaseHandler {
	return &BaseHandler{
		Requests:      make(chan request.Request, 100),
		Messages:      make(chan interface{}, 100),
		Errors:        make(chan interface{}, 100),
		DocumentCache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func TestValidateHandlerValid(t *testing.T) {
	h := &ValidateHandler{BaseHandler: newTestBaseHandler()}
	r := httptest.NewRequest("POST", "/geojson/validate", strings.NewReader(`{"type":"Point","coordinates":[102.0,0.5]}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"type":"Point"}`, w.Body.String())
}

func TestValidateHandlerInvalid(t *testing.T) {
	h := &ValidateHandler{BaseHandler: newTestBaseHandler()}
	r := httptest.NewRequest("POST", "/geojson/validate", strings.NewReader(`{"type":"NotAnActualType"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"valid":false,"error":"unknown geometry type \"NotAnActualType\""}`, w.Body.String())
}

func TestValidateHandlerNotImplemented(t *testing.T) {
	h := &ValidateHandler{BaseHandler: newTestBaseHandler()}
	r := httptest.NewRequest("GET", "/geojson/validate", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
