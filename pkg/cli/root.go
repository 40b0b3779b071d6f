// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cli

import (
	"os"
	"strings"
)

import (
	"github.com/spf13/cobra"
)

import (
	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
)

import (
	"github.com/spatialcurrent/go-geojson/pkg/cli/convert"
	"github.com/spatialcurrent/go-geojson/pkg/cli/serve"
	"github.com/spatialcurrent/go-geojson/pkg/cli/validate"
	"github.com/spatialcurrent/go-geojson/pkg/cli/version"
)

// Execute handles command line calls to geojson.
func Execute(gitBranch string, gitCommit string) error {

	//
	// Root Command
	//

	var rootCmd = &cobra.Command{
		Use:   "geojson",
		Short: "a tool for validating and normalizing GeoJSON",
		Long: `Geojson is a tool for validating and normalizing GeoJSON documents.
Through go-reader-writer, supports the follow compression algorithms: ` + strings.Join(grw.Algorithms, ", "),
	}
	InitRootFlags(rootCmd.PersistentFlags())

	//
	// Completion Command
	//

	completionCommandLong := ""
	if _, err := os.Stat("/etc/bash_completion.d/"); !os.IsNotExist(err) {
		completionCommandLong = "To install completion scripts run:\ngeojson completion > /etc/bash_completion.d/geojson"
	} else {
		if _, err := os.Stat("/usr/local/etc/bash_completion.d/"); !os.IsNotExist(err) {
			completionCommandLong = "To install completion scripts run:\ngeojson completion > /usr/local/etc/bash_completion.d/geojson"
		} else {
			completionCommandLong = "To install completion scripts run:\ngeojson completion > .../bash_completion.d/geojson"
		}
	}

	rootCmd.AddCommand(func() *cobra.Command {
		return &cobra.Command{
			Use:   "completion",
			Short: "Generates bash completion scripts",
			Long:  completionCommandLong,
			RunE: func(cmd *cobra.Command, args []string) error {
				return rootCmd.GenBashCompletion(os.Stdout)
			},
		}
	}())

	rootCmd.AddCommand(version.NewCommand(&version.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	//
	// Validate Command
	//

	rootCmd.AddCommand(validate.NewCommand())

	//
	// Convert Command
	//

	rootCmd.AddCommand(convert.NewCommand())

	//
	// Serve Command
	//

	rootCmd.AddCommand(serve.NewCommand(&serve.NewCommandInput{
		GitBranch: gitBranch,
		GitCommit: gitCommit,
	}))

	return rootCmd.Execute()
}
