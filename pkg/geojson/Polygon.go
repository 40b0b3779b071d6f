// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// Polygon is a sequence of linear rings.  The first ring is the exterior and
// any following rings are holes.  Ring closure and minimum length are not
// enforced.
type Polygon [][]Position

func (p Polygon) Type() string {
	return TypeNamePolygon
}
