// Delete command: remove a record entirely.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteYes bool

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <type> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE:  runDelete,
	}
	cmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
	return cmd
}

// deleter is the optional delete operation some sources support.
type deleter interface {
	Delete(ctx context.Context, id string) error
}

func runDelete(cmd *cobra.Command, args []string) error {
	if !deleteYes {
		fmt.Printf("Delete %s record %s? [y/N] ", args[0], args[1])
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			return nil
		}
	}

	source, cleanup, err := newSource(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	d, ok := source.(deleter)
	if !ok {
		return fmt.Errorf("source does not support delete")
	}
	if err := d.Delete(cmd.Context(), args[1]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s record %s\n", args[0], args[1])
	return nil
}
