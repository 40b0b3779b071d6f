// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/spf13/viper"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/http"
)

// CheckServeConfig checks the configuration for the serve command.
func CheckServeConfig(v *viper.Viper) error {
	err := http.CheckHttpConfig(v)
	if err != nil {
		return err
	}
	cacheDefaultExpiration := v.GetDuration(FlagCacheDefaultExpiration)
	if cacheDefaultExpiration < MinCacheDefaultExpiration {
		return &ErrInvalidDuration{Name: FlagCacheDefaultExpiration, Value: cacheDefaultExpiration, Min: MinCacheDefaultExpiration}
	}
	cacheCleanupInterval := v.GetDuration(FlagCacheCleanupInterval)
	if cacheCleanupInterval < MinCacheCleanupInterval {
		return &ErrInvalidDuration{Name: FlagCacheCleanupInterval, Value: cacheCleanupInterval, Min: MinCacheCleanupInterval}
	}
	return nil
}
