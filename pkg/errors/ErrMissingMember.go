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

// ErrMissingMember is returned when a required object member is absent.
type ErrMissingMember struct {
	Name string
}

func (e *ErrMissingMember) Error() string {
	return fmt.Sprintf("missing required member %q", e.Name)
}
