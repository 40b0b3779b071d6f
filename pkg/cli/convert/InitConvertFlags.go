// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package convert

import (
	"github.com/spf13/pflag"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/input"
	"github.com/spatialcurrent/go-geojson/pkg/cli/output"
)

// InitConvertFlags initializes the flags for the convert command.
func InitConvertFlags(flag *pflag.FlagSet) {
	input.InitInputFlags(flag)
	output.InitOutputFlags(flag)
}
