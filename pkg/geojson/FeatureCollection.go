// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// FeatureCollection is a sequence of features.
type FeatureCollection[P any] struct {
	Features []Feature[P]
}

func (c FeatureCollection[P]) Type() string {
	return TypeNameFeatureCollection
}
