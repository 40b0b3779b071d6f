// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"fmt"
	"sort"
)

import (
	"github.com/spf13/viper"
)

// PrintViperSettings prints the viper settings to stdout as sorted
// key=value lines.
func PrintViperSettings(v *viper.Viper) {
	fmt.Println("=================================================")
	fmt.Println("Viper:")
	fmt.Println("-------------------------------------------------")
	settings := v.AllSettings()
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s=%v\n", key, settings[key])
	}
	fmt.Println("=================================================")
}
