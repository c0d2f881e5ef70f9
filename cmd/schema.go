package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/ctgdx/internal/answers"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for answer documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closeLog, err := prepare(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			data, err := answers.SchemaJSON(cat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
