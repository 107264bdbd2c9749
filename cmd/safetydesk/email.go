// Email command: compose a plain-text summary of one record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/export"
	"github.com/kilnworks/safetydesk/pkg/types"
)

var emailMailto bool

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email <type> <id>",
		Short: "Compose an email summary of one record",
		Args:  cobra.ExactArgs(2),
		RunE:  runEmail,
	}
	cmd.Flags().BoolVar(&emailMailto, "mailto", false, "print a mailto URL instead of the message")
	return cmd
}

func runEmail(cmd *cobra.Command, args []string) error {
	session, cleanup, err := newSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	if !session.Select(args[1]) {
		return fmt.Errorf("record %s: %w", args[1], types.ErrNotFound)
	}
	rec, _ := session.Selected()
	subject, body := export.Email(rec, session.Schema())

	if emailMailto {
		fmt.Println(export.MailtoURL(subject, body))
		return nil
	}
	fmt.Printf("Subject: %s\n\n%s\n", subject, body)
	return nil
}
