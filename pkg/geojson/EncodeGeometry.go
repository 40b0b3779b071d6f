// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// EncodeGeometry encodes a single geometry to a JSON value tree, recursing
// through nested geometry collections.  Geometry implementations outside the
// known set encode to an empty object.
func EncodeGeometry(geometry Geometry) map[string]interface{} {
	switch g := geometry.(type) {
	case Point:
		return map[string]interface{}{
			"type":        TypeNamePoint,
			"coordinates": encodePosition(Position(g)),
		}
	case MultiPoint:
		return map[string]interface{}{
			"type":        TypeNameMultiPoint,
			"coordinates": encodePositions(g),
		}
	case LineString:
		return map[string]interface{}{
			"type":        TypeNameLineString,
			"coordinates": encodePositions(g),
		}
	case MultiLineString:
		return map[string]interface{}{
			"type":        TypeNameMultiLineString,
			"coordinates": encodeLines(g),
		}
	case Polygon:
		return map[string]interface{}{
			"type":        TypeNamePolygon,
			"coordinates": encodeLines(g),
		}
	case MultiPolygon:
		return map[string]interface{}{
			"type":        TypeNameMultiPolygon,
			"coordinates": encodePolygons(g),
		}
	case GeometryCollection:
		geometries := make([]interface{}, 0, len(g))
		for _, item := range g {
			geometries = append(geometries, EncodeGeometry(item))
		}
		return map[string]interface{}{
			"type":       TypeNameGeometryCollection,
			"geometries": geometries,
		}
	}
	return map[string]interface{}{}
}

// encodePosition emits a 2 element array when the altitude is exactly 0 and
// a 3 element array otherwise.
func encodePosition(position Position) interface{} {
	if position.Z == 0 {
		return []interface{}{position.X, position.Y}
	}
	return []interface{}{position.X, position.Y, position.Z}
}

func encodePositions(positions []Position) interface{} {
	values := make([]interface{}, 0, len(positions))
	for _, position := range positions {
		values = append(values, encodePosition(position))
	}
	return values
}

func encodeLines(lines [][]Position) interface{} {
	values := make([]interface{}, 0, len(lines))
	for _, line := range lines {
		values = append(values, encodePositions(line))
	}
	return values
}

func encodePolygons(polygons [][][]Position) interface{} {
	values := make([]interface{}, 0, len(polygons))
	for _, polygon := range polygons {
		values = append(values, encodeLines(polygon))
	}
	return values
}
