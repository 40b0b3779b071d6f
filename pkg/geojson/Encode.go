// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// Encode encodes a GeoJSON document to a JSON value tree suitable for
// json.Marshal.  Feature properties are emitted verbatim.
func Encode(doc *GeoJSON[interface{}]) interface{} {
	return EncodeWith(EncodeProperties, doc)
}

// EncodeWith encodes a GeoJSON document to a JSON value tree, encoding
// feature properties with the given encoder.  Encoding is total: every value
// of the model maps to a valid JSON value.
func EncodeWith[P any](encodeProperties PropertiesEncoder[P], doc *GeoJSON[P]) interface{} {

	var obj map[string]interface{}

	switch {
	case doc.Feature != nil:
		obj = encodeFeature(encodeProperties, doc.Feature)
	case doc.Collection != nil:
		features := make([]interface{}, 0, len(doc.Collection.Features))
		for i := range doc.Collection.Features {
			features = append(features, encodeFeature(encodeProperties, &doc.Collection.Features[i]))
		}
		obj = map[string]interface{}{
			"type":     TypeNameFeatureCollection,
			"features": features,
		}
	default:
		obj = EncodeGeometry(doc.Geometry)
	}

	if doc.Bbox != nil {
		obj["bbox"] = encodeBbox(doc.Bbox)
	}

	return obj
}

func encodeFeature[P any](encodeProperties PropertiesEncoder[P], feature *Feature[P]) map[string]interface{} {

	var geometry interface{}
	if feature.Geometry != nil {
		geometry = EncodeGeometry(feature.Geometry)
	}

	obj := map[string]interface{}{
		"type":       TypeNameFeature,
		"geometry":   geometry,
		"properties": encodeProperties(feature.Properties),
	}

	// An id decoded from an integer is emitted as a string.
	if feature.Id != nil {
		obj["id"] = *feature.Id
	}

	return obj
}

func encodeBbox(bbox Bbox) interface{} {
	values := make([]interface{}, 0, len(bbox))
	for _, value := range bbox {
		values = append(values, value)
	}
	return values
}
