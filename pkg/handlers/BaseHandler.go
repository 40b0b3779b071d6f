// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
)

import (
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/tidwall/pretty"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/request"
)

type BaseHandler struct {
	Viper         *viper.Viper
	Requests      chan request.Request
	Messages      chan interface{}
	Errors        chan interface{}
	DocumentCache *gocache.Cache
	Debug         bool
	GitBranch     string
	GitCommit     string
}

func (h *BaseHandler) SendDebug(message interface{}) {
	if h.Debug {
		h.Messages <- message
	}
}

func (h *BaseHandler) SendInfo(message interface{}) {
	h.Messages <- message
}

func (h *BaseHandler) SendError(message interface{}) {
	h.Errors <- message
}

// BuildCacheKeyDocument builds the cache key for a normalized document from
// the digest of the request body and the output options.
func (h *BaseHandler) BuildCacheKeyDocument(body []byte, pretty bool) string {
	return fmt.Sprintf("document=%x\npretty=%v", sha256.Sum256(body), pretty)
}

func (h *BaseHandler) GetCachedDocument(key string) ([]byte, bool) {
	if h.DocumentCache == nil {
		return nil, false
	}
	if cached, found := h.DocumentCache.Get(key); found {
		if b, ok := cached.([]byte); ok {
			return b, true
		}
	}
	return nil, false
}

func (h *BaseHandler) SetCachedDocument(key string, b []byte) {
	if h.DocumentCache != nil {
		h.DocumentCache.Set(key, b, gocache.DefaultExpiration)
	}
}

func (h *BaseHandler) RespondWithObject(w http.ResponseWriter, statusCode int, object interface{}, p bool) error {
	b, err := json.Marshal(object)
	if err != nil {
		return errors.Wrap(err, "error serializing response")
	}
	if p {
		b = pretty.Pretty(b)
	}
	return h.RespondWithBytes(w, statusCode, b)
}

func (h *BaseHandler) RespondWithBytes(w http.ResponseWriter, statusCode int, b []byte) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err := w.Write(b)
	if err != nil {
		return errors.Wrap(err, "error writing response")
	}
	return nil
}

func (h *BaseHandler) RespondWithError(w http.ResponseWriter, statusCode int, err error) error {
	return h.RespondWithObject(w, statusCode, map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	}, false)
}

func (h *BaseHandler) RespondWithNotImplemented(w http.ResponseWriter) error {
	return h.RespondWithError(w, http.StatusNotImplemented, errors.New("not implemented"))
}
