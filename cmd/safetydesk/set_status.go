// Set-status command: the immediate status write path of the detail panel.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/pkg/types"
)

func newSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <type> <id> <status>",
		Short: "Change a record's status",
		Long: `Set-status sends only the status change to the backend, then refetches
the collection so the list reflects the authoritative state.

Valid statuses: ` + strings.Join(types.Statuses(), ", "),
		Args: cobra.ExactArgs(3),
		RunE: runSetStatus,
	}
}

func runSetStatus(cmd *cobra.Command, args []string) error {
	session, cleanup, err := newSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	if !session.Select(args[1]) {
		return fmt.Errorf("record %s: %w", args[1], types.ErrNotFound)
	}
	if err := session.Editor().CommitStatus(cmd.Context(), args[2]); err != nil {
		return err
	}

	rec, _ := session.Selected()
	fmt.Printf("Record %s is now %s\n", rec.ID, rec.Status)
	return nil
}
