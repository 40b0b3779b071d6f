// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"github.com/spf13/pflag"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/input"
)

// InitValidateFlags initializes the flags for the validate command.
func InitValidateFlags(flag *pflag.FlagSet) {
	input.InitInputFlags(flag)
}
