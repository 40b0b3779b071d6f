// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package version

import (
	"fmt"
)

import (
	"github.com/spf13/cobra"
)

// NewCommandInput provides the input for the NewCommand function.
type NewCommandInput struct {
	GitBranch string
	GitCommit string
}

// NewCommand returns a new instance of the version command.
func NewCommand(input *NewCommandInput) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information to stdout",
		Long:  "print version information to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(input.GitBranch) > 0 {
				fmt.Println(fmt.Sprintf("Branch: %q", input.GitBranch))
			}
			if len(input.GitCommit) > 0 {
				fmt.Println(fmt.Sprintf("Commit: %q", input.GitCommit))
			}
			return nil
		},
	}
}
