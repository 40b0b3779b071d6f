// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// Point is a single position.
type Point Position

func (p Point) Type() string {
	return TypeNamePoint
}
