// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

import (
	"strings"
)

import (
	"github.com/spf13/pflag"
)

import (
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
)

// InitInputFlags initializes the input flags.
func InitInputFlags(flag *pflag.FlagSet) {
	flag.StringP(FlagInputURI, "i", DefaultInputURI, "the input uri")
	flag.String(FlagInputCompression, "", "the input compression: "+strings.Join(grw.Algorithms, ", "))
	flag.Int(FlagInputReaderBufferSize, DefaultInputReaderBufferSize, "the buffer size for the input reader")
}
