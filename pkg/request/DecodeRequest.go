// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"fmt"
)

// DecodeRequest records the outcome of decoding a document submitted over
// http.
type DecodeRequest struct {
	Path     string
	TypeName string
	Size     int
	Valid    bool
}

func (dr DecodeRequest) String() string {
	return fmt.Sprintf("decode of %d bytes at %s: type=%q valid=%v", dr.Size, dr.Path, dr.TypeName, dr.Valid)
}

func (dr DecodeRequest) Map() map[string]interface{} {
	return map[string]interface{}{
		"path":  dr.Path,
		"type":  dr.TypeName,
		"size":  dr.Size,
		"valid": dr.Valid,
	}
}
