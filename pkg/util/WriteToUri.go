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

// WriteToUri writes the given bytes to the resource at the given uri, e.g.,
// stdout or a local file, compressing with the given algorithm.
func WriteToUri(uri string, compression string, appendToFile bool, b []byte) error {

	writer, err := grw.WriteToResource(&grw.WriteToResourceInput{
		Uri:      uri,
		Alg:      compression,
		Dict:     grw.NoDict,
		Append:   appendToFile,
		S3Client: nil,
	})
	if err != nil {
		return errors.Wrapf(err, "error opening resource at uri %q", uri)
	}

	_, err = writer.Write(b)
	if err != nil {
		return errors.Wrapf(err, "error writing to resource at uri %q", uri)
	}

	err = writer.Flush()
	if err != nil {
		return errors.Wrapf(err, "error flushing resource at uri %q", uri)
	}

	err = writer.Close()
	if err != nil {
		return errors.Wrapf(err, "error closing resource at uri %q", uri)
	}

	return nil
}
