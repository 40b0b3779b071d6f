// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"github.com/spf13/cobra"
)

// NewCommand returns a new instance of the validate command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "validate a GeoJSON document",
		Long:  "validate the GeoJSON document read from the input uri, printing the document type on success",
		RunE:  validateFunction,
	}
	InitValidateFlags(cmd.Flags())
	return cmd
}
