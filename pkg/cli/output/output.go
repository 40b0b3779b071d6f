// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

const (
	FlagOutputURI         = "output-uri"
	FlagOutputCompression = "output-compression"
	FlagOutputAppend      = "output-append"
	FlagOutputPretty      = "output-pretty"

	DefaultOutputURI = "stdout"
)
