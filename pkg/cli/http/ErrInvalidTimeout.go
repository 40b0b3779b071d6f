// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

import (
	"fmt"
	"time"
)

// ErrInvalidTimeout is returned when a http timeout is below its minimum.
type ErrInvalidTimeout struct {
	Name  string
	Value time.Duration
	Min   time.Duration
}

func (e *ErrInvalidTimeout) Error() string {
	return fmt.Sprintf("invalid %s timeout %v, expecting at least %v", e.Name, e.Value, e.Min)
}
