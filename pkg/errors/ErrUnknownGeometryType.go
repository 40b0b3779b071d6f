// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package errors

import (
	"fmt"
)

// ErrUnknownGeometryType is returned when the type member of a geometry
// object is not one of the seven known geometry type names.
type ErrUnknownGeometryType struct {
	Value string
}

func (e *ErrUnknownGeometryType) Error() string {
	return fmt.Sprintf("unknown geometry type %q", e.Value)
}
