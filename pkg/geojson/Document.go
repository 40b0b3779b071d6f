// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// GeoJSON is a decoded GeoJSON document: a bare geometry, a single feature,
// or a feature collection, together with an optional bounding box.  Exactly
// one of Geometry, Feature, and Collection is set.
type GeoJSON[P any] struct {
	Geometry   Geometry
	Feature    *Feature[P]
	Collection *FeatureCollection[P]
	Bbox       Bbox
}

// Type returns the type name of the root object.
func (g *GeoJSON[P]) Type() string {
	switch {
	case g.Feature != nil:
		return TypeNameFeature
	case g.Collection != nil:
		return TypeNameFeatureCollection
	case g.Geometry != nil:
		return g.Geometry.Type()
	}
	return ""
}
