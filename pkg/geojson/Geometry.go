// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// Geometry is a single GeoJSON geometry: Point, MultiPoint, LineString,
// MultiLineString, Polygon, MultiPolygon, or GeometryCollection.
type Geometry interface {
	Type() string
}
