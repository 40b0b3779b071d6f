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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePoint(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Point","coordinates":[12.49268,41.89029]}`))
	require.NoError(t, err)
	assert.Equal(t, Point(Position{X: 12.49268, Y: 41.89029}), doc.Geometry)
	assert.Nil(t, doc.Feature)
	assert.Nil(t, doc.Collection)
	assert.Nil(t, doc.Bbox)
}

func TestDecodePointAltitude(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Point","coordinates":[12.49268,41.89029,21.0]}`))
	require.NoError(t, err)
	assert.Equal(t, Point(Position{X: 12.49268, Y: 41.89029, Z: 21.0}), doc.Geometry)
}

func TestDecodePositionArity(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"Point","coordinates":[]}`))
	assert.EqualError(t, err, "error decoding coordinates: invalid position: too few numbers (0)")

	_, err = Unmarshal([]byte(`{"type":"Point","coordinates":[1.0]}`))
	assert.EqualError(t, err, "error decoding coordinates: invalid position: too few numbers (1)")

	_, err = Unmarshal([]byte(`{"type":"Point","coordinates":[1.0,2.0,3.0,4.0]}`))
	assert.EqualError(t, err, "error decoding coordinates: invalid position: too many numbers (4)")

	doc, err := Unmarshal([]byte(`{"type":"Point","coordinates":[1.0,2.0]}`))
	require.NoError(t, err)
	assert.Equal(t, Point(Position{X: 1.0, Y: 2.0, Z: 0}), doc.Geometry)
}

func TestDecodeUnknownGeometryType(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"NotAnActualType"}`))
	assert.EqualError(t, err, `unknown geometry type "NotAnActualType"`)
}

func TestDecodeMissingCoordinates(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"Point"}`))
	assert.EqualError(t, err, `missing required member "coordinates"`)
}

func TestDecodeMissingType(t *testing.T) {
	_, err := Unmarshal([]byte(`{"coordinates":[1.0,2.0]}`))
	assert.EqualError(t, err, `missing required member "type"`)
}

func TestDecodeMultiLineString(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"MultiLineString","coordinates":[[[1.0,2.0],[3.0,4.0]],[[5.0,6.0],[7.0,8.0]]]}`))
	require.NoError(t, err)
	expected := MultiLineString{
		{{X: 1, Y: 2}, {X: 3, Y: 4}},
		{{X: 5, Y: 6}, {X: 7, Y: 8}},
	}
	assert.Equal(t, expected, doc.Geometry)
}

func TestDecodeGeometryCollection(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
		"type": "GeometryCollection",
		"geometries": [
			{"type": "Point", "coordinates": [100.0, 0.0]},
			{"type": "GeometryCollection", "geometries": [
				{"type": "LineString", "coordinates": [[101.0, 0.0], [102.0, 1.0]]}
			]}
		]
	}`))
	require.NoError(t, err)
	expected := GeometryCollection{
		Point(Position{X: 100}),
		GeometryCollection{
			LineString{{X: 101}, {X: 102, Y: 1}},
		},
	}
	assert.Equal(t, expected, doc.Geometry)
}

func TestDecodeGeometryCollectionInvalidElement(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"GeometryCollection","geometries":[{"type":"Nope"}]}`))
	assert.EqualError(t, err, `error decoding geometry 0: unknown geometry type "Nope"`)
}

func TestDecodeFeature(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[1.0,2.0]},"properties":{"name":"somewhere"}}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Feature)
	assert.Equal(t, Point(Position{X: 1, Y: 2}), doc.Feature.Geometry)
	assert.Equal(t, map[string]interface{}{"name": "somewhere"}, doc.Feature.Properties)
	assert.Nil(t, doc.Feature.Id)
}

func TestDecodeFeatureNullGeometry(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{}}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Feature)
	assert.Nil(t, doc.Feature.Geometry)
}

func TestDecodeFeatureMissingGeometry(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"Feature","properties":{}}`))
	assert.EqualError(t, err, `missing required member "geometry"`)
}

func TestDecodeFeatureMissingProperties(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"Feature","geometry":null}`))
	assert.EqualError(t, err, `missing required member "properties"`)
}

func TestDecodeFeatureIdInteger(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{},"id":42}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Feature.Id)
	assert.Equal(t, "42", *doc.Feature.Id)
}

func TestDecodeFeatureIdLargeInteger(t *testing.T) {
	// an integer id beyond the range of int64 keeps its decimal value
	doc, err := Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{},"id":10000000000000000000}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Feature.Id)
	assert.Equal(t, "10000000000000000000", *doc.Feature.Id)

	doc, err = Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{},"id":-10000000000000000000}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Feature.Id)
	assert.Equal(t, "-10000000000000000000", *doc.Feature.Id)
}

func TestDecodeFeatureIdString(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{},"id":"foo"}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Feature.Id)
	assert.Equal(t, "foo", *doc.Feature.Id)
}

func TestDecodeFeatureIdInvalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{},"id":true}`))
	assert.EqualError(t, err, `invalid member "id": expecting string or integer, found bool`)

	_, err = Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{},"id":4.5}`))
	assert.EqualError(t, err, `invalid member "id": expecting string or integer, found float64`)
}

func TestDecodeFeatureBbox(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"type":"Feature","bbox":[-10.0,-10.0,10.0,10.0],"geometry":{"type":"Point","coordinates":[1.0,2.0]},"properties":{}}`))
	require.NoError(t, err)
	assert.Equal(t, Bbox{-10, -10, 10, 10}, doc.Bbox)
	require.NotNil(t, doc.Feature)
	assert.Equal(t, Point(Position{X: 1, Y: 2}), doc.Feature.Geometry)
}

func TestDecodeBboxInvalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"Point","coordinates":[1.0,2.0],"bbox":"nope"}`))
	assert.EqualError(t, err, `invalid member "bbox": expecting array of numbers, found string`)

	_, err = Unmarshal([]byte(`{"type":"Point","coordinates":[1.0,2.0],"bbox":[1.0,"2"]}`))
	assert.EqualError(t, err, `invalid member "bbox": expecting array of numbers, found string`)
}

func TestDecodeFeatureCollection(t *testing.T) {
	// The example FeatureCollection from RFC 7946 Section 1.5.
	doc, err := Unmarshal([]byte(`{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"geometry": {"type": "Point", "coordinates": [102.0, 0.5]},
				"properties": {"prop0": "value0"}
			},
			{
				"type": "Feature",
				"geometry": {
					"type": "LineString",
					"coordinates": [[102.0, 0.0], [103.0, 1.0], [104.0, 0.0], [105.0, 1.0]]
				},
				"properties": {"prop0": "value0", "prop1": 0.0}
			},
			{
				"type": "Feature",
				"geometry": {
					"type": "Polygon",
					"coordinates": [
						[[100.0, 0.0], [101.0, 0.0], [101.0, 1.0], [100.0, 1.0], [100.0, 0.0]]
					]
				},
				"properties": {"prop0": "value0", "prop1": {"this": "that"}}
			}
		]
	}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Collection)
	require.Len(t, doc.Collection.Features, 3)
	assert.Nil(t, doc.Bbox)

	assert.Equal(t, Point(Position{X: 102, Y: 0.5}), doc.Collection.Features[0].Geometry)
	assert.Equal(t, LineString{{X: 102}, {X: 103, Y: 1}, {X: 104}, {X: 105, Y: 1}}, doc.Collection.Features[1].Geometry)
	assert.Equal(t, Polygon{{{X: 100}, {X: 101}, {X: 101, Y: 1}, {X: 100, Y: 1}, {X: 100}}}, doc.Collection.Features[2].Geometry)

	for _, feature := range doc.Collection.Features {
		assert.Nil(t, feature.Id)
	}
}

func TestDecodeFeatureCollectionMissingFeatures(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"FeatureCollection"}`))
	assert.EqualError(t, err, `missing required member "features"`)
}

func TestDecodeFeatureCollectionInvalidFeature(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":null}]}`))
	assert.EqualError(t, err, `error decoding feature 0: missing required member "properties"`)
}

func TestDecodeNotAnObject(t *testing.T) {
	_, err := Unmarshal([]byte(`[1.0,2.0]`))
	assert.EqualError(t, err, "invalid value: expecting object, found []interface {}")
}
