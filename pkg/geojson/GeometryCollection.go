// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// GeometryCollection is a sequence of geometries, which may themselves be
// geometry collections.  Nesting depth is unbounded.
type GeometryCollection []Geometry

func (c GeometryCollection) Type() string {
	return TypeNameGeometryCollection
}
