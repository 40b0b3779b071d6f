// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package input

const (
	FlagInputURI              = "input-uri"
	FlagInputCompression      = "input-compression"
	FlagInputReaderBufferSize = "input-reader-buffer-size"

	DefaultInputURI              = "stdin"
	DefaultInputReaderBufferSize = 4096
)
