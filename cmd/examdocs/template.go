package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"examdocs/internal/spreadsheet"
)

func newTemplateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the empty student list workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			if err := spreadsheet.Template(f); err != nil {
				f.Close()
				return fmt.Errorf("failed to write template: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", spreadsheet.TemplateFilename, "Output file path")
	return cmd
}
