// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

import (
	"encoding/json"
)

import (
	"github.com/pkg/errors"
)

// Unmarshal parses GeoJSON bytes and decodes the resulting value tree.
func Unmarshal(b []byte) (*GeoJSON[interface{}], error) {
	return UnmarshalWith(DecodeProperties, b)
}

// UnmarshalWith parses GeoJSON bytes and decodes the resulting value tree,
// decoding feature properties with the given decoder.
func UnmarshalWith[P any](decodeProperties PropertiesDecoder[P], b []byte) (*GeoJSON[P], error) {
	var value interface{}
	err := json.Unmarshal(b, &value)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing json")
	}
	return DecodeWith(decodeProperties, value)
}
