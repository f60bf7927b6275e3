package main

import (
	"fmt"

	"voice-sales-backend/internal/leadcsv"

	"github.com/spf13/cobra"
)

var leadsFlags struct {
	file string
}

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Manage leads",
}

var leadsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import leads from a CSV file with name, phone and industry columns",
	RunE:  runLeadsImport,
}

func init() {
	leadsImportCmd.Flags().StringVarP(&leadsFlags.file, "file", "f", "", "CSV file, or - for stdin (required)")
	_ = leadsImportCmd.MarkFlagRequired("file")

	leadsCmd.AddCommand(leadsImportCmd)
}

func runLeadsImport(cmd *cobra.Command, _ []string) error {
	in, err := openInput(leadsFlags.file)
	if err != nil {
		return err
	}
	defer in.Close()

	rows, err := leadcsv.Parse(in)
	if err != nil {
		return err
	}

	b, closeDB, err := openBackend()
	if err != nil {
		return err
	}
	defer closeDB()

	result, err := b.leads.BulkImport(cmd.Context(), rows)
	if err != nil {
		return fmt.Errorf("import leads: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, rowErr := range result.Errors {
		fmt.Fprintf(out, "row %d: %s\n", rowErr.Row, rowErr.Message)
	}
	fmt.Fprintf(out, "%d imported, %d failed\n", result.ImportedCount, len(result.Errors))
	return nil
}
