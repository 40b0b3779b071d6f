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

// Marshal encodes a GeoJSON document and serializes it to bytes.  Member
// order within objects follows json.Marshal, which sorts keys, so output is
// deterministic.
func Marshal(doc *GeoJSON[interface{}]) ([]byte, error) {
	return json.Marshal(Encode(doc))
}

// MarshalWith encodes a GeoJSON document and serializes it to bytes,
// encoding feature properties with the given encoder.
func MarshalWith[P any](encodeProperties PropertiesEncoder[P], doc *GeoJSON[P]) ([]byte, error) {
	return json.Marshal(EncodeWith(encodeProperties, doc))
}
