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

func TestEncodePointAltitudeZero(t *testing.T) {
	doc := &GeoJSON[interface{}]{Geometry: Point(Position{X: 12.49268, Y: 41.89029})}
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[12.49268,41.89029]}`, string(b))
}

func TestEncodePointAltitude(t *testing.T) {
	doc := &GeoJSON[interface{}]{Geometry: Point(Position{X: 12.49268, Y: 41.89029, Z: 21})}
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[12.49268,41.89029,21]}`, string(b))
}

func TestEncodeFeature(t *testing.T) {
	id := "foo"
	doc := &GeoJSON[interface{}]{
		Feature: &Feature[interface{}]{
			Geometry:   LineString{{X: 1, Y: 2}, {X: 3, Y: 4}},
			Properties: map[string]interface{}{"name": "somewhere"},
			Id:         &id,
		},
	}
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "Feature",
		"geometry": {"type": "LineString", "coordinates": [[1, 2], [3, 4]]},
		"properties": {"name": "somewhere"},
		"id": "foo"
	}`, string(b))
}

func TestEncodeFeatureNullGeometry(t *testing.T) {
	doc := &GeoJSON[interface{}]{
		Feature: &Feature[interface{}]{Properties: map[string]interface{}{}},
	}
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Feature","geometry":null,"properties":{}}`, string(b))
}

func TestEncodeFeatureIntegerIdAsString(t *testing.T) {
	// An id decoded from an integer is re-emitted as a string.
	doc, err := Unmarshal([]byte(`{"type":"Feature","geometry":null,"properties":{},"id":42}`))
	require.NoError(t, err)
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Feature","geometry":null,"properties":{},"id":"42"}`, string(b))
}

func TestEncodeFeatureCollection(t *testing.T) {
	doc := &GeoJSON[interface{}]{
		Collection: &FeatureCollection[interface{}]{
			Features: []Feature[interface{}]{
				{Geometry: Point(Position{X: 102, Y: 0.5}), Properties: map[string]interface{}{}},
			},
		},
		Bbox: Bbox{-10, -10, 10, 10},
	}
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [102, 0.5]}, "properties": {}}
		],
		"bbox": [-10, -10, 10, 10]
	}`, string(b))
}

func TestEncodeEmptyFeatureCollection(t *testing.T) {
	doc := &GeoJSON[interface{}]{Collection: &FeatureCollection[interface{}]{}}
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(b))
}

func TestEncodeGeometryCollection(t *testing.T) {
	doc := &GeoJSON[interface{}]{
		Geometry: GeometryCollection{
			Point(Position{X: 100}),
			GeometryCollection{
				LineString{{X: 101}, {X: 102, Y: 1}},
			},
		},
	}
	b, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "GeometryCollection",
		"geometries": [
			{"type": "Point", "coordinates": [100, 0]},
			{"type": "GeometryCollection", "geometries": [
				{"type": "LineString", "coordinates": [[101, 0], [102, 1]]}
			]}
		]
	}`, string(b))
}
