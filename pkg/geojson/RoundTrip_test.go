// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"testing"
)

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripGeometries(t *testing.T) {
	id := "deadbeef"
	docs := map[string]*GeoJSON[interface{}]{
		"point":            {Geometry: Point(Position{X: 12.49268, Y: 41.89029})},
		"point_altitude":   {Geometry: Point(Position{X: 12.49268, Y: 41.89029, Z: 21.5})},
		"multi_point":      {Geometry: MultiPoint{{X: 1, Y: 2}, {X: 3, Y: 4, Z: 5}}},
		"line_string":      {Geometry: LineString{{X: 102}, {X: 103, Y: 1}, {X: 104}, {X: 105, Y: 1}}},
		"multi_linestring": {Geometry: MultiLineString{{{X: 1, Y: 2}, {X: 3, Y: 4}}, {{X: 5, Y: 6}, {X: 7, Y: 8}}}},
		"polygon":          {Geometry: Polygon{{{X: 100}, {X: 101}, {X: 101, Y: 1}, {X: 100, Y: 1}, {X: 100}}}},
		"multi_polygon": {Geometry: MultiPolygon{
			{{{X: 100}, {X: 101}, {X: 101, Y: 1}, {X: 100}}},
			{{{X: 10}, {X: 11}, {X: 11, Y: 1}, {X: 10}}},
		}},
		"geometry_collection": {Geometry: GeometryCollection{
			Point(Position{X: 100}),
			GeometryCollection{
				GeometryCollection{
					LineString{{X: 101}, {X: 102, Y: 1}},
				},
				MultiPoint{{X: 1, Y: 2, Z: 3}},
			},
		}},
		"geometry_with_bbox": {
			Geometry: Point(Position{X: 1, Y: 2}),
			Bbox:     Bbox{-10, -10, 10, 10},
		},
		"feature": {
			Feature: &Feature[interface{}]{
				Geometry:   Point(Position{X: 102, Y: 0.5}),
				Properties: map[string]interface{}{"prop0": "value0"},
				Id:         &id,
			},
		},
		"feature_null_geometry": {
			Feature: &Feature[interface{}]{Properties: map[string]interface{}{}},
		},
		"feature_collection": {
			Collection: &FeatureCollection[interface{}]{
				Features: []Feature[interface{}]{
					{Geometry: Point(Position{X: 102, Y: 0.5}), Properties: map[string]interface{}{}},
					{Properties: map[string]interface{}{"prop1": map[string]interface{}{"this": "that"}}},
				},
			},
			Bbox: Bbox{-180, -90, 180, 90},
		},
		"empty_feature_collection": {
			Collection: &FeatureCollection[interface{}]{Features: []Feature[interface{}]{}},
		},
	}
	for name, doc := range docs {
		decoded, err := Decode(Encode(doc))
		require.NoError(t, err, name)
		assert.Equal(t, doc, decoded, name)
	}
}

type cityProperties struct {
	Name       string
	Population int64
}

func decodeCityProperties(value interface{}) (cityProperties, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return cityProperties{}, errors.Errorf("expecting object for properties, found %T", value)
	}
	name, ok := obj["name"].(string)
	if !ok {
		return cityProperties{}, errors.New("missing name")
	}
	population, ok := obj["population"].(float64)
	if !ok {
		return cityProperties{}, errors.New("missing population")
	}
	return cityProperties{Name: name, Population: int64(population)}, nil
}

func encodeCityProperties(properties cityProperties) interface{} {
	return map[string]interface{}{
		"name":       properties.Name,
		"population": float64(properties.Population),
	}
}

func TestRoundTripCustomProperties(t *testing.T) {
	doc := &GeoJSON[cityProperties]{
		Collection: &FeatureCollection[cityProperties]{
			Features: []Feature[cityProperties]{
				{
					Geometry:   Point(Position{X: 4.9041, Y: 52.3676}),
					Properties: cityProperties{Name: "Amsterdam", Population: 821752},
				},
				{
					Geometry:   Point(Position{X: -77.0369, Y: 38.9072}),
					Properties: cityProperties{Name: "Washington", Population: 702455},
				},
			},
		},
	}
	decoded, err := DecodeWith(decodeCityProperties, EncodeWith(encodeCityProperties, doc))
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestRoundTripCustomPropertiesError(t *testing.T) {
	_, err := UnmarshalWith(decodeCityProperties, []byte(`{"type":"Feature","geometry":null,"properties":{"name":"Nowhere"}}`))
	assert.EqualError(t, err, "error decoding properties: missing population")
}

func TestRoundTripBytes(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[102.0,0.5]},"properties":{"prop0":"value0"},"id":"a1"}`))
	require.NoError(t, err)
	b, err := Marshal(doc)
	require.NoError(t, err)
	decoded, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}
