// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package http

import (
	"time"
)

const (
	FlagHttpAddress              = "http-address"
	FlagHttpTimeoutIdle          = "http-timeout-idle"
	FlagHttpTimeoutRead          = "http-timeout-read"
	FlagHttpTimeoutWrite         = "http-timeout-write"
	FlagHttpMiddlewareRecover    = "http-middleware-recover"
	FlagHttpMiddlewareCors       = "http-middleware-cors"
	FlagHttpGracefulShutdown     = "http-graceful-shutdown"
	FlagHttpGracefulShutdownWait = "http-graceful-shutdown-wait"

	DefaultHttpAddress          = ":8080"
	DefaultHttpTimeoutIdle      = time.Second * 60
	DefaultHttpTimeoutRead      = time.Second * 15
	DefaultHttpTimeoutWrite     = time.Second * 15
	DefaultGracefulShutdownWait = time.Second * 15

	MinIdleTimeout          = time.Second * 15
	MinReadTimeout          = time.Second * 5
	MinWriteTimeout         = time.Second * 5
	MinGracefulShutdownWait = time.Second * 5
)
