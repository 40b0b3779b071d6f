// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"math"
	"strconv"
)

import (
	"github.com/pkg/errors"
)

import (
	gerrors "github.com/spatialcurrent/go-geojson/pkg/errors"
)

// Decode decodes a GeoJSON document from a JSON value tree, such as produced
// by json.Unmarshal into an empty interface.  Feature properties are passed
// through as opaque JSON values.
func Decode(value interface{}) (*GeoJSON[interface{}], error) {
	return DecodeWith(DecodeProperties, value)
}

// DecodeWith decodes a GeoJSON document from a JSON value tree, decoding
// feature properties with the given decoder.  The first structural violation
// anywhere in the document fails the whole decode.
func DecodeWith[P any](decodeProperties PropertiesDecoder[P], value interface{}) (*GeoJSON[P], error) {

	obj, ok := value.(map[string]interface{})
	if !ok {
		return nil, &gerrors.ErrInvalidValue{Expected: "object", Value: value}
	}

	typeName, err := decodeMemberString(obj, "type")
	if err != nil {
		return nil, err
	}

	doc := &GeoJSON[P]{}

	switch typeName {
	case TypeNameFeature:
		feature, err := decodeFeature(decodeProperties, obj)
		if err != nil {
			return nil, err
		}
		doc.Feature = feature
	case TypeNameFeatureCollection:
		list, err := decodeMemberList(obj, "features")
		if err != nil {
			return nil, err
		}
		features := make([]Feature[P], 0, len(list))
		for i, item := range list {
			featureObject, ok := item.(map[string]interface{})
			if !ok {
				return nil, errors.Wrapf(&gerrors.ErrInvalidValue{Expected: "object", Value: item}, "error decoding feature %d", i)
			}
			feature, err := decodeFeature(decodeProperties, featureObject)
			if err != nil {
				return nil, errors.Wrapf(err, "error decoding feature %d", i)
			}
			features = append(features, *feature)
		}
		doc.Collection = &FeatureCollection[P]{Features: features}
	default:
		// Any other type name is decoded as a bare geometry, which
		// re-validates the type member against the known geometry types.
		geometry, err := DecodeGeometry(value)
		if err != nil {
			return nil, err
		}
		doc.Geometry = geometry
	}

	if bboxValue, ok := obj["bbox"]; ok {
		bbox, err := decodeBbox(bboxValue)
		if err != nil {
			return nil, err
		}
		doc.Bbox = bbox
	}

	return doc, nil
}

func decodeFeature[P any](decodeProperties PropertiesDecoder[P], obj map[string]interface{}) (*Feature[P], error) {

	geometryValue, ok := obj["geometry"]
	if !ok {
		return nil, &gerrors.ErrMissingMember{Name: "geometry"}
	}

	feature := &Feature[P]{}

	if geometryValue != nil {
		geometry, err := DecodeGeometry(geometryValue)
		if err != nil {
			return nil, errors.Wrap(err, "error decoding geometry")
		}
		feature.Geometry = geometry
	}

	propertiesValue, ok := obj["properties"]
	if !ok {
		return nil, &gerrors.ErrMissingMember{Name: "properties"}
	}

	properties, err := decodeProperties(propertiesValue)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding properties")
	}
	feature.Properties = properties

	if idValue, ok := obj["id"]; ok {
		id, err := decodeFeatureId(idValue)
		if err != nil {
			return nil, err
		}
		feature.Id = &id
	}

	return feature, nil
}

// decodeFeatureId accepts a string or integer identifier.  An integer id is
// normalized to its decimal string representation.  Formatting goes through
// strconv.FormatFloat, which is value preserving for integers beyond the
// range of int64.
func decodeFeatureId(value interface{}) (string, error) {
	switch id := value.(type) {
	case string:
		return id, nil
	case float64:
		if id != math.Trunc(id) || math.IsInf(id, 0) {
			return "", &gerrors.ErrInvalidMember{Name: "id", Expected: "string or integer", Value: value}
		}
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	}
	return "", &gerrors.ErrInvalidMember{Name: "id", Expected: "string or integer", Value: value}
}

func decodeBbox(value interface{}) (Bbox, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, &gerrors.ErrInvalidMember{Name: "bbox", Expected: "array of numbers", Value: value}
	}
	bbox := make(Bbox, 0, len(list))
	for _, item := range list {
		number, ok := item.(float64)
		if !ok {
			return nil, &gerrors.ErrInvalidMember{Name: "bbox", Expected: "array of numbers", Value: item}
		}
		bbox = append(bbox, number)
	}
	return bbox, nil
}

func decodeMemberString(obj map[string]interface{}, name string) (string, error) {
	value, ok := obj[name]
	if !ok {
		return "", &gerrors.ErrMissingMember{Name: name}
	}
	str, ok := value.(string)
	if !ok {
		return "", &gerrors.ErrInvalidMember{Name: name, Expected: "string", Value: value}
	}
	return str, nil
}

func decodeMemberList(obj map[string]interface{}, name string) ([]interface{}, error) {
	value, ok := obj[name]
	if !ok {
		return nil, &gerrors.ErrMissingMember{Name: name}
	}
	list, ok := value.([]interface{})
	if !ok {
		return nil, &gerrors.ErrInvalidMember{Name: name, Expected: "array", Value: value}
	}
	return list, nil
}
