// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/input"
	"github.com/spatialcurrent/go-geojson/pkg/cli/logging"
	"github.com/spatialcurrent/go-geojson/pkg/config"
	"github.com/spatialcurrent/go-geojson/pkg/geojson"
	"github.com/spatialcurrent/go-geojson/pkg/util"
)

func validateFunction(cmd *cobra.Command, args []string) error {

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return errors.Wrap(err, "error initializing configuration")
	}

	verbose := v.GetBool(logging.FlagVerbose)
	if verbose {
		config.PrintViperSettings(v)
	}

	logger := logging.NewLoggerFromViper(v)

	inputBytes, err := util.ReadFromUri(
		v.GetString(input.FlagInputURI),
		v.GetString(input.FlagInputCompression),
		v.GetInt(input.FlagInputReaderBufferSize))
	if err != nil {
		logger.Fatal(errors.Wrap(err, "error reading input"))
	}

	doc, err := geojson.Unmarshal(inputBytes)
	if err != nil {
		logger.Fatal(errors.Wrap(err, "invalid GeoJSON document"))
	}

	logger.InfoF("valid %s document", doc.Type())
	logger.Flush()
	logger.Close()

	return nil
}
