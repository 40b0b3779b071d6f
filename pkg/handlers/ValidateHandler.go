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
)

import (
	"github.com/spatialcurrent/go-try-get/pkg/gtg"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/geojson"
	"github.com/spatialcurrent/go-geojson/pkg/request"
)

// ValidateHandler decodes the request body as GeoJSON and reports whether it
// is structurally valid.
type ValidateHandler struct {
	*BaseHandler
}

func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

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

		doc, err := geojson.Unmarshal(body)
		if err != nil {
			h.Requests <- request.DecodeRequest{Path: r.URL.Path, Size: len(body), Valid: false}
			respondErr := h.RespondWithObject(w, http.StatusBadRequest, map[string]interface{}{
				"valid": false,
				"error": err.Error(),
			}, p)
			if respondErr != nil {
				panic(respondErr)
			}
			return
		}

		h.Requests <- request.DecodeRequest{Path: r.URL.Path, TypeName: doc.Type(), Size: len(body), Valid: true}
		err = h.RespondWithObject(w, http.StatusOK, map[string]interface{}{
			"valid": true,
			"type":  doc.Type(),
		}, p)
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
