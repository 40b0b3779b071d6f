// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

import (
	"github.com/spf13/viper"
)

// CheckHttpConfig checks the http configuration.
func CheckHttpConfig(v *viper.Viper) error {
	timeoutIdle := v.GetDuration(FlagHttpTimeoutIdle)
	if timeoutIdle < MinIdleTimeout {
		return &ErrInvalidTimeout{Name: "idle", Value: timeoutIdle, Min: MinIdleTimeout}
	}
	timeoutRead := v.GetDuration(FlagHttpTimeoutRead)
	if timeoutRead < MinReadTimeout {
		return &ErrInvalidTimeout{Name: "read", Value: timeoutRead, Min: MinReadTimeout}
	}
	timeoutWrite := v.GetDuration(FlagHttpTimeoutWrite)
	if timeoutWrite < MinWriteTimeout {
		return &ErrInvalidTimeout{Name: "write", Value: timeoutWrite, Min: MinWriteTimeout}
	}
	gracefulShutdownWait := v.GetDuration(FlagHttpGracefulShutdownWait)
	if gracefulShutdownWait < MinGracefulShutdownWait {
		return &ErrInvalidTimeout{Name: "graceful shutdown wait", Value: gracefulShutdownWait, Min: MinGracefulShutdownWait}
	}
	return nil
}
