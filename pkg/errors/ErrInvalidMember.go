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

// ErrInvalidMember is returned when an object member is present but does not
// have the expected shape.
type ErrInvalidMember struct {
	Name     string
	Expected string
	Value    interface{}
}

func (e *ErrInvalidMember) Error() string {
	return fmt.Sprintf("invalid member %q: expecting %s, found %T", e.Name, e.Expected, e.Value)
}
