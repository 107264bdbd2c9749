// Edit command: stage field edits on a working copy and commit them all.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/render"
	"github.com/kilnworks/safetydesk/pkg/types"
)

var editSets []string

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <type> <id>",
		Short: "Edit a record's fields",
		Long: `Edit applies field changes to a working copy and sends the full update.
On failure the record is left untouched on the backend.

Example:
  safetydesk edit nearmiss 0198f2a1 --set status=Closed --set followup=yes
  safetydesk edit bbs 0198f2a1 --set "leader_name=R. Alvarez"`,
		Args: cobra.ExactArgs(2),
		RunE: runEdit,
	}
	cmd.Flags().StringArrayVar(&editSets, "set", nil, "field assignment, field=value (repeatable)")
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	fields, err := parseSetFlags(editSets)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("nothing to edit, pass at least one --set")
	}

	session, cleanup, err := newSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	if !session.Select(args[1]) {
		return fmt.Errorf("record %s: %w", args[1], types.ErrNotFound)
	}
	editor := session.Editor()
	for name, value := range fields {
		if err := editor.SetField(name, value); err != nil {
			return err
		}
	}
	if err := editor.CommitAll(cmd.Context()); err != nil {
		return err
	}

	render.Detail(os.Stdout, editor.Record(), session.Schema())
	return nil
}
