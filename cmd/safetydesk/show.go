// Show command: the detail panel for a single record.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/render"
	"github.com/kilnworks/safetydesk/pkg/types"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <type> <id>",
		Short: "Show one record in full",
		Args:  cobra.ExactArgs(2),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	session, cleanup, err := newSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	if !session.Select(args[1]) {
		return fmt.Errorf("record %s: %w", args[1], types.ErrNotFound)
	}
	rec, _ := session.Selected()

	if jsonOutput {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	render.Detail(os.Stdout, rec, session.Schema())
	return nil
}
