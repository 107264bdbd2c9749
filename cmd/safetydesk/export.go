// Export command: write the visible records to an Excel or CSV file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/export"
)

var (
	exportSearch  string
	exportFilters []string
	exportFormat  string
	exportOut     string
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <type>",
		Short: "Export visible records to Excel or CSV",
		Long: `Export writes the records that would be visible under the given search
and filters. Sorting follows the type's default order.

Example:
  safetydesk export bbs --format xlsx --out observations.xlsx
  safetydesk export nearmiss --filter status=Open --format csv --out open.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
	cmd.Flags().StringVar(&exportSearch, "search", "", "free-text search term")
	cmd.Flags().StringArrayVar(&exportFilters, "filter", nil, "column filter, column=value (repeatable)")
	cmd.Flags().StringVar(&exportFormat, "format", "xlsx", "output format: xlsx or csv")
	cmd.Flags().StringVar(&exportOut, "out", "", "output file (required)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	session, cleanup, err := newSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	session.SetSearch(exportSearch)
	if err := applyFilterFlags(session, exportFilters); err != nil {
		return err
	}
	visible := session.VisibleRecords()

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	switch exportFormat {
	case "xlsx":
		err = export.WriteExcel(f, visible, session.Schema())
	case "csv":
		err = export.WriteCSV(f, visible, session.Schema())
	default:
		return fmt.Errorf("unknown format %q, want xlsx or csv", exportFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d record(s) to %s\n", len(visible), exportOut)
	return nil
}
