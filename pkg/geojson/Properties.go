// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// PropertiesDecoder decodes the properties member of a feature from a JSON
// value.
type PropertiesDecoder[P any] func(value interface{}) (P, error)

// PropertiesEncoder encodes the properties of a feature to a JSON value.
type PropertiesEncoder[P any] func(properties P) interface{}

// DecodeProperties passes feature properties through as an opaque JSON value.
func DecodeProperties(value interface{}) (interface{}, error) {
	return value, nil
}

// EncodeProperties emits feature properties verbatim.
func EncodeProperties(properties interface{}) interface{} {
	return properties
}
