// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package geojson

// Bbox is a bounding box as a flat array of numbers.  The length and ordering
// of the array are not validated.
type Bbox []float64
