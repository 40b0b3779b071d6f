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

// ErrInvalidValue is returned when a JSON value does not have the expected
// shape.
type ErrInvalidValue struct {
	Expected string
	Value    interface{}
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value: expecting %s, found %T", e.Expected, e.Value)
}
