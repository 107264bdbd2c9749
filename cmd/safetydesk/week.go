// Week command: print the current huddle week.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/weeks"
)

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Print the current huddle week",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ref := weeks.Current(time.Now())
			start, end := ref.Range()
			fmt.Printf("%s (%s to %s)\n", ref,
				start.Format("2006-01-02"),
				end.AddDate(0, 0, -1).Format("2006-01-02"))
		},
	}
}
