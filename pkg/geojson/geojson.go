// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package geojson decodes and encodes GeoJSON documents (RFC 7946) to and
// from JSON value trees, such as those produced by encoding/json.  The codec
// round trips: a document decoded from a value tree encodes back to an
// equivalent value tree.
package geojson

const (
	TypeNamePoint              = "Point"
	TypeNameMultiPoint         = "MultiPoint"
	TypeNameLineString         = "LineString"
	TypeNameMultiLineString    = "MultiLineString"
	TypeNamePolygon            = "Polygon"
	TypeNameMultiPolygon       = "MultiPolygon"
	TypeNameGeometryCollection = "GeometryCollection"
	TypeNameFeature            = "Feature"
	TypeNameFeatureCollection  = "FeatureCollection"
)

var (
	// GeometryTypeNames is the closed set of geometry type names.
	GeometryTypeNames = []string{
		TypeNamePoint,
		TypeNameMultiPoint,
		TypeNameLineString,
		TypeNameMultiLineString,
		TypeNamePolygon,
		TypeNameMultiPolygon,
		TypeNameGeometryCollection,
	}
)
