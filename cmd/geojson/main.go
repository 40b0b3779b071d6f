// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package main

import (
	"fmt"
	"os"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli"
)

// gitBranch and gitCommit are set at build time with ldflags.
var gitBranch string
var gitCommit string

func main() {
	if err := cli.Execute(gitBranch, gitCommit); err != nil {
		fmt.Fprintf(os.Stderr, err.Error()+"\n")
		os.Exit(1)
	}
}
