// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"github.com/pkg/errors"
)

import (
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
)

// ReadFromUri reads all the bytes from the resource at the given uri, e.g.,
// stdin, a local file, or a http url, decompressing with the given
// algorithm.
func ReadFromUri(uri string, compression string, bufferSize int) ([]byte, error) {

	reader, _, err := grw.ReadFromResource(&grw.ReadFromResourceInput{
		Uri:        uri,
		Alg:        compression,
		Dict:       grw.NoDict,
		BufferSize: bufferSize,
		S3Client:   nil,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening resource at uri %q", uri)
	}

	b, err := reader.ReadAllAndClose()
	if err != nil {
		return nil, errors.Wrapf(err, "error reading resource at uri %q", uri)
	}

	return b, nil
}
