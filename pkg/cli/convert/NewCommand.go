// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package convert

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a new instance of the convert command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "convert a GeoJSON document into normalized form",
		Long:  "read the GeoJSON document from the input uri, normalize it, and write it to the output uri",
		RunE:  convertFunction,
	}
	InitConvertFlags(cmd.Flags())
	return cmd
}
