// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// Feature pairs a geometry with caller-defined properties and an optional
// identifier.  Geometry is nil when the geometry member was JSON null.
// Id is nil when the id member was absent; an integer id is normalized to
// its decimal string representation.
type Feature[P any] struct {
	Geometry   Geometry
	Properties P
	Id         *string
}

func (f Feature[P]) Type() string {
	return TypeNameFeature
}
