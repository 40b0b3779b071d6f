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

// ErrInvalidPosition is returned when a position array does not contain 2 or
// 3 numbers.
type ErrInvalidPosition struct {
	Length int
}

func (e *ErrInvalidPosition) Error() string {
	if e.Length < 2 {
		return fmt.Sprintf("invalid position: too few numbers (%d)", e.Length)
	}
	return fmt.Sprintf("invalid position: too many numbers (%d)", e.Length)
}
