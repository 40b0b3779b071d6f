// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"strings"
)

// SplitNameFormat splits a uri into a base name and a format derived from
// the file extension.
func SplitNameFormat(uri string) (string, string) {
	if i := strings.LastIndex(uri, "."); i != -1 {
		return uri[:i], strings.ToLower(uri[i+1:])
	}
	return uri, ""
}
