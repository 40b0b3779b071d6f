// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"bytes"
)

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

import (
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
)

// MergeConfig merges a config from the given uri into the Viper config.
// Panics if the config cannot be read, since configuration errors are not
// recoverable.
func MergeConfig(v *viper.Viper, configUri string) {

	_, configFormat := SplitNameFormat(configUri)

	v.SetConfigType(configFormat)

	configReader, _, err := grw.ReadFromResource(&grw.ReadFromResourceInput{
		Uri:        configUri,
		Alg:        "",
		Dict:       grw.NoDict,
		BufferSize: grw.DefaultBufferSize,
		S3Client:   nil,
	})
	if err != nil {
		panic(errors.Wrapf(err, "error opening config from uri %q", configUri))
	}

	configBytes, err := configReader.ReadAllAndClose()
	if err != nil {
		panic(errors.Wrapf(err, "error reading config from uri %q", configUri))
	}

	if len(configBytes) > 0 {
		err = v.MergeConfig(bytes.NewReader(configBytes))
		if err != nil {
			panic(errors.Wrapf(err, "error merging config from uri %q", configUri))
		}
	}
}
