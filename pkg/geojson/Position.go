// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// Position is a single coordinate tuple of longitude (X), latitude (Y), and
// altitude (Z).  A position decoded from a 2 element array has an altitude of
// exactly 0, and a position with an altitude of exactly 0 encodes back to a
// 2 element array.
type Position struct {
	X float64
	Y float64
	Z float64
}
