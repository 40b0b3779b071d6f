// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

import (
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/logging"
	"github.com/spatialcurrent/go-geojson/pkg/config"
	"github.com/spatialcurrent/go-geojson/pkg/request"
	"github.com/spatialcurrent/go-geojson/pkg/router"
)

const (
	FlagCacheDefaultExpiration = "cache-default-expiration"
	FlagCacheCleanupInterval   = "cache-cleanup-interval"
	FlagLogRequestsCache       = "log-requests-cache"
	FlagLogRequestsDecode      = "log-requests-decode"

	DefaultCacheDefaultExpiration = time.Minute * 5
	DefaultCacheCleanupInterval   = time.Minute * 10

	MinCacheDefaultExpiration = time.Second * 5
	MinCacheCleanupInterval   = time.Second * 5
)

func serveFunction(gitBranch string, gitCommit string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		//
		// Viper
		//

		v, err := config.NewViper(cmd.Flags())
		if err != nil {
			return errors.Wrap(err, "error initializing configuration")
		}

		verbose := v.GetBool(logging.FlagVerbose)

		if verbose {
			config.PrintViperSettings(v)
		}

		//
		// Check Configuration
		//

		err = CheckServeConfig(v)
		if err != nil {
			return errors.Wrap(err, "error with configuration")
		}

		//
		// HTTP
		//

		address := v.GetString("http-address")
		httpTimeoutIdle := v.GetDuration("http-timeout-idle")
		httpTimeoutRead := v.GetDuration("http-timeout-read")
		httpTimeoutWrite := v.GetDuration("http-timeout-write")

		logger := logging.NewLoggerFromViper(v)

		messages := make(chan interface{}, 10000)
		logger.ListenInfo(messages, nil)

		errorsChannel := make(chan interface{}, 10000)
		logger.ListenError(errorsChannel, nil)

		requests := make(chan request.Request, 10000)

		logRequestsCache := v.GetBool(FlagLogRequestsCache)
		logRequestsDecode := v.GetBool(FlagLogRequestsDecode)

		go func() {
			for r := range requests {
				switch r.(type) {
				case request.CacheRequest:
					if logRequestsCache {
						messages <- r.Map()
					}
				case request.DecodeRequest:
					if logRequestsDecode {
						messages <- r.Map()
					}
				default:
					messages <- r.Map()
				}
			}
		}()

		//
		// Document Cache
		//

		documentCache := gocache.New(
			v.GetDuration(FlagCacheDefaultExpiration),
			v.GetDuration(FlagCacheCleanupInterval))

		//
		// Router
		//

		handler := router.NewGeoJSONRouter(&router.NewGeoJSONRouterInput{
			Viper:         v,
			Requests:      requests,
			Messages:      messages,
			ErrorsChannel: errorsChannel,
			DocumentCache: documentCache,
			Logger:        logger,
			GitBranch:     gitBranch,
			GitCommit:     gitCommit,
			Verbose:       verbose,
		})

		gracefulShutdown := v.GetBool("http-graceful-shutdown")
		gracefulShutdownWait := v.GetDuration("http-graceful-shutdown-wait")

		logger.Info(map[string]interface{}{
			"msg":                  "configuring server",
			"address":              address,
			"httpTimeoutIdle":      httpTimeoutIdle,
			"httpTimeoutRead":      httpTimeoutRead,
			"httpTimeoutWrite":     httpTimeoutWrite,
			"gracefulShutdown":     gracefulShutdown,
			"gracefulShutdownWait": gracefulShutdownWait,
		})

		srv := &http.Server{
			Addr:         address,
			IdleTimeout:  httpTimeoutIdle,
			ReadTimeout:  httpTimeoutRead,
			WriteTimeout: httpTimeoutWrite,
			Handler:      handler,
		}

		logger.Flush()

		if gracefulShutdown {
			go func() {
				logger.Info("starting server with graceful shutdown")
				logger.InfoF("listening on %s", srv.Addr)
				logger.Flush()
				if err := srv.ListenAndServe(); err != nil {
					fmt.Println(err)
					os.Exit(1)
				}
			}()

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
			<-c
			logger.Close()
			ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownWait)
			defer cancel()
			err := srv.Shutdown(ctx)
			logger.Info("received signal for graceful shutdown of server")
			logger.Flush()
			if err != nil {
				os.Exit(1)
			}
			os.Exit(0)
		}

		logger.Info("starting server without graceful shutdown")
		logger.InfoF("listening on %s", srv.Addr)
		logger.Flush()
		logger.Fatal(srv.ListenAndServe())

		return nil
	}
}
