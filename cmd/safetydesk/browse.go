// Browse command: the list view of one report type with search, column
// filters, and sortable ordering.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/render"
	"github.com/kilnworks/safetydesk/pkg/browse"
)

var (
	browseSearch  string
	browseFilters []string
	browseSort    string
	browseDesc    bool
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <type>",
		Short: "List records with search, filters, and sorting",
		Long: `Browse lists the records of one report type.

Search matches case-insensitively against the type's searchable fields.
Filters are Excel-style multi-selects: repeat --filter to accept several
values for a column (OR within a column, AND across columns).

Example:
  safetydesk browse bbs
  safetydesk browse bbs --search kiln
  safetydesk browse nearmiss --filter status=Open --filter shift=Nights
  safetydesk browse inspection --sort date --desc`,
		Args: cobra.ExactArgs(1),
		RunE: runBrowse,
	}
	cmd.Flags().StringVar(&browseSearch, "search", "", "free-text search term")
	cmd.Flags().StringArrayVar(&browseFilters, "filter", nil, "column filter, column=value (repeatable)")
	cmd.Flags().StringVar(&browseSort, "sort", "", "sort column (default: the type's date column)")
	cmd.Flags().BoolVar(&browseDesc, "desc", false, "sort descending")
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	session, cleanup, err := newSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	session.SetSearch(browseSearch)
	if err := applyFilterFlags(session, browseFilters); err != nil {
		return err
	}
	if browseSort != "" {
		dir := browse.Ascending
		if browseDesc {
			dir = browse.Descending
		}
		session.SetSort(browse.SortState{Field: browseSort, Direction: dir})
	}

	visible := session.VisibleRecords()
	if jsonOutput {
		out, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	render.Filters(os.Stdout, session.Search(), session.Filters(), session.Schema())
	render.Table(os.Stdout, visible, session.Schema())
	return nil
}
