// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"
)

import (
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/util"
)

// NewViper returns a new Viper configuration bound to the given flags, with
// environment variables overwriting config files, the default config from
// the home directory if present, and any configs given by the config-uri
// flag merged in order.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {

	v := viper.New()

	err := v.BindPFlags(flags)
	if err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config

	if home, homeErr := homedir.Dir(); homeErr == nil {
		defaultConfig := filepath.Join(home, ".geojson.yml")
		if _, statErr := os.Stat(defaultConfig); statErr == nil {
			util.MergeConfig(v, defaultConfig)
		}
	}

	util.MergeConfigs(v, v.GetStringSlice("config-uri"))

	return v, nil
}
