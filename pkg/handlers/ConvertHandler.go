// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"io"
	"net/http"
)

import (
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

import (
	"github.com/spatialcurrent/go-try-get/pkg/gtg"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/geojson"
	"github.com/spatialcurrent/go-geojson/pkg/request"
)

// ConvertHandler decodes the request body as GeoJSON and returns the
// re-encoded document as a normalization pass.  Normalized documents are
// cached by body digest.
type ConvertHandler struct {
	*BaseHandler
}

func (h *ConvertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	switch r.Method {
	case "POST":
		options := queryOptions(r)
		p := gtg.TryGetString(options, "pretty", "") != ""

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.SendError(errors.Wrap(err, "error reading request body"))
			err = h.RespondWithError(w, http.StatusBadRequest, errors.Wrap(err, "error reading request body"))
			if err != nil {
				panic(err)
			}
			return
		}

		cacheKey := h.BuildCacheKeyDocument(body, p)
		if cached, found := h.GetCachedDocument(cacheKey); found {
			h.Requests <- request.CacheRequest{Key: cacheKey, Hit: true}
			err = h.RespondWithBytes(w, http.StatusOK, cached)
			if err != nil {
				panic(err)
			}
			return
		}
		h.Requests <- request.CacheRequest{Key: cacheKey, Hit: false}

		doc, err := geojson.Unmarshal(body)
		if err != nil {
			h.Requests <- request.DecodeRequest{Path: r.URL.Path, Size: len(body), Valid: false}
			respondErr := h.RespondWithError(w, http.StatusBadRequest, err)
			if respondErr != nil {
				panic(respondErr)
			}
			return
		}
		h.Requests <- request.DecodeRequest{Path: r.URL.Path, TypeName: doc.Type(), Size: len(body), Valid: true}

		b, err := geojson.Marshal(doc)
		if err != nil {
			h.SendError(errors.Wrap(err, "error serializing document"))
			respondErr := h.RespondWithError(w, http.StatusInternalServerError, err)
			if respondErr != nil {
				panic(respondErr)
			}
			return
		}
		if p {
			b = pretty.Pretty(b)
		}

		h.SetCachedDocument(cacheKey, b)

		err = h.RespondWithBytes(w, http.StatusOK, b)
		if err != nil {
			panic(err)
		}
	case "OPTIONS":
		w.WriteHeader(http.StatusOK)
	default:
		err := h.RespondWithNotImplemented(w)
		if err != nil {
			panic(err)
		}
	}

}
