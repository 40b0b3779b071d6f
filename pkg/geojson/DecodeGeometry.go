// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"github.com/pkg/errors"
)

import (
	gerrors "github.com/spatialcurrent/go-geojson/pkg/errors"
)

// DecodeGeometry decodes a single geometry from a JSON value tree, recursing
// through nested geometry collections.
func DecodeGeometry(value interface{}) (Geometry, error) {

	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, &gerrors.ErrInvalidValue{Expected: "object", Value: value}
	}

	typeName, err := decodeMemberString(obj, "type")
	if err != nil {
		return nil, err
	}

	switch typeName {
	case TypeNamePoint:
		coordinatesValue, ok := obj["coordinates"]
		if !ok {
			return nil, &gerrors.ErrMissingMember{Name: "coordinates"}
		}
		position, err := decodePosition(coordinatesValue)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding coordinates")
		}
		return Point(position), nil
	case TypeNameMultiPoint:
		list, err := decodeMemberList(obj, "coordinates")
		if err != nil {
			return nil, err
		}
		positions, err := decodePositions(list)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding coordinates")
		}
		return MultiPoint(positions), nil
	case TypeNameLineString:
		list, err := decodeMemberList(obj, "coordinates")
		if err != nil {
			return nil, err
		}
		positions, err := decodePositions(list)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding coordinates")
		}
		return LineString(positions), nil
	case TypeNameMultiLineString:
		list, err := decodeMemberList(obj, "coordinates")
		if err != nil {
			return nil, err
		}
		lines, err := decodeLines(list)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding coordinates")
		}
		return MultiLineString(lines), nil
	case TypeNamePolygon:
		list, err := decodeMemberList(obj, "coordinates")
		if err != nil {
			return nil, err
		}
		rings, err := decodeLines(list)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding coordinates")
		}
		return Polygon(rings), nil
	case TypeNameMultiPolygon:
		list, err := decodeMemberList(obj, "coordinates")
		if err != nil {
			return nil, err
		}
		polygons, err := decodePolygons(list)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding coordinates")
		}
		return MultiPolygon(polygons), nil
	case TypeNameGeometryCollection:
		list, err := decodeMemberList(obj, "geometries")
		if err != nil {
			return nil, err
		}
		geometries := make(GeometryCollection, 0, len(list))
		for i, item := range list {
			geometry, err := DecodeGeometry(item)
			if err != nil {
				return nil, errors.Wrapf(err, "error decoding geometry %d", i)
			}
			geometries = append(geometries, geometry)
		}
		return geometries, nil
	}

	return nil, &gerrors.ErrUnknownGeometryType{Value: typeName}
}

func decodePosition(value interface{}) (Position, error) {
	list, ok := value.([]interface{})
	if !ok {
		return Position{}, &gerrors.ErrInvalidValue{Expected: "array of numbers", Value: value}
	}
	if len(list) < 2 || len(list) > 3 {
		return Position{}, &gerrors.ErrInvalidPosition{Length: len(list)}
	}
	numbers := make([]float64, 0, len(list))
	for _, item := range list {
		number, ok := item.(float64)
		if !ok {
			return Position{}, &gerrors.ErrInvalidValue{Expected: "number", Value: item}
		}
		numbers = append(numbers, number)
	}
	position := Position{X: numbers[0], Y: numbers[1]}
	if len(numbers) == 3 {
		position.Z = numbers[2]
	}
	return position, nil
}

func decodePositions(list []interface{}) ([]Position, error) {
	positions := make([]Position, 0, len(list))
	for i, item := range list {
		position, err := decodePosition(item)
		if err != nil {
			return nil, errors.Wrapf(err, "error decoding position %d", i)
		}
		positions = append(positions, position)
	}
	return positions, nil
}

func decodeLines(list []interface{}) ([][]Position, error) {
	lines := make([][]Position, 0, len(list))
	for i, item := range list {
		inner, ok := item.([]interface{})
		if !ok {
			return nil, errors.Wrapf(&gerrors.ErrInvalidValue{Expected: "array", Value: item}, "error decoding element %d", i)
		}
		positions, err := decodePositions(inner)
		if err != nil {
			return nil, errors.Wrapf(err, "error decoding element %d", i)
		}
		lines = append(lines, positions)
	}
	return lines, nil
}

func decodePolygons(list []interface{}) ([][][]Position, error) {
	polygons := make([][][]Position, 0, len(list))
	for i, item := range list {
		inner, ok := item.([]interface{})
		if !ok {
			return nil, errors.Wrapf(&gerrors.ErrInvalidValue{Expected: "array", Value: item}, "error decoding element %d", i)
		}
		rings, err := decodeLines(inner)
		if err != nil {
			return nil, errors.Wrapf(err, "error decoding element %d", i)
		}
		polygons = append(polygons, rings)
	}
	return polygons, nil
}
