// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/spf13/pflag"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/cors"
	"github.com/spatialcurrent/go-geojson/pkg/cli/http"
)

// InitServeFlags initializes the flags for the serve command.
func InitServeFlags(flag *pflag.FlagSet) {
	http.InitHttpFlags(flag)
	cors.InitCorsFlags(flag)
	flag.Duration(FlagCacheDefaultExpiration, DefaultCacheDefaultExpiration, "the default expiration of items in the document cache")
	flag.Duration(FlagCacheCleanupInterval, DefaultCacheCleanupInterval, "the interval for cleaning up expired items in the document cache")
	flag.Bool(FlagLogRequestsCache, false, "log cache hit/miss requests")
	flag.Bool(FlagLogRequestsDecode, false, "log decode requests")
}
