// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// MultiPoint is a sequence of positions.
type MultiPoint []Position

func (p MultiPoint) Type() string {
	return TypeNameMultiPoint
}
