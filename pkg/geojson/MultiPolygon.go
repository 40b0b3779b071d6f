// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// MultiPolygon is a sequence of polygons.
type MultiPolygon [][][]Position

func (p MultiPolygon) Type() string {
	return TypeNameMultiPolygon
}
