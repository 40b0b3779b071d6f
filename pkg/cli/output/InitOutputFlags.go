// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"strings"
)

import (
	"github.com/spf13/pflag"
)

import (
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
)

// InitOutputFlags initializes the output flags.
func InitOutputFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagOutputURI, "o", DefaultOutputURI, "the output uri")
	flag.String(FlagOutputCompression, "", "the output compression: "+strings.Join(grw.Algorithms, ", "))
	flag.Bool(FlagOutputAppend, false, "append to output files instead of truncating")
	flag.BoolP(FlagOutputPretty, "p", false, "pretty print the output")
}
