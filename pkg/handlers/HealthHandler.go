// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"net/http"
)

type HealthHandler struct {
	*BaseHandler
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.RespondWithObject(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"branch": h.GitBranch,
		"commit": h.GitCommit,
	}, false)
	if err != nil {
		h.SendError(err)
	}
}
