// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// MultiLineString is a sequence of lines.
type MultiLineString [][]Position

func (l MultiLineString) Type() string {
	return TypeNameMultiLineString
}
