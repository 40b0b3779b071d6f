// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package convert

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/input"
	"github.com/spatialcurrent/go-geojson/pkg/cli/logging"
	"github.com/spatialcurrent/go-geojson/pkg/cli/output"
	"github.com/spatialcurrent/go-geojson/pkg/config"
	"github.com/spatialcurrent/go-geojson/pkg/geojson"
	"github.com/spatialcurrent/go-geojson/pkg/util"
)

func convertFunction(cmd *cobra.Command, args []string) error {

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

	outputBytes, err := geojson.Marshal(doc)
	if err != nil {
		logger.Fatal(errors.Wrap(err, "error serializing document"))
	}

	if v.GetBool(output.FlagOutputPretty) {
		outputBytes = pretty.Pretty(outputBytes)
	} else {
		outputBytes = append(outputBytes, '\n')
	}

	err = util.WriteToUri(
		v.GetString(output.FlagOutputURI),
		v.GetString(output.FlagOutputCompression),
		v.GetBool(output.FlagOutputAppend),
		outputBytes)
	if err != nil {
		logger.Fatal(errors.Wrap(err, "error writing output"))
	}

	logger.Flush()
	logger.Close()

	return nil
}
