// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"fmt"
	"time"
)

// ErrInvalidDuration is an error for an invalid duration setting.
type ErrInvalidDuration struct {
	Name  string
	Value time.Duration
	Min   time.Duration
}

func (e *ErrInvalidDuration) Error() string {
	return fmt.Sprintf("invalid duration for %s (%v), minimum duration is %v", e.Name, e.Value, e.Min)
}
