// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// LineString is a sequence of positions forming a line.  The minimum length
// required by RFC 7946 is not enforced.
type LineString []Position

func (l LineString) Type() string {
	return TypeNameLineString
}
