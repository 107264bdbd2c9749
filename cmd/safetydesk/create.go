// Create command: submit a new record, optionally with a write-once photo.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/weeks"
	"github.com/kilnworks/safetydesk/pkg/types"
)

var (
	createSets  []string
	createPhoto string
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <type>",
		Short: "Create a new record",
		Long: `Create submits a new record of the given type. The submitter defaults to
the configured current user. Huddle records default to the current ISO week.

Example:
  safetydesk create nearmiss --set department=Press --set shift=Days \
      --set "description=Pallet stacked past the load line"
  safetydesk create bbs --set area=Kiln --photo kiln-guard.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
	cmd.Flags().StringArrayVar(&createSets, "set", nil, "field assignment, field=value (repeatable)")
	cmd.Flags().StringVar(&createPhoto, "photo", "", "path of a photo to attach")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	fields, err := parseSetFlags(createSets)
	if err != nil {
		return err
	}
	applyCreateDefaults(args[0], fields)

	var attachment *types.Attachment
	if createPhoto != "" {
		data, err := os.ReadFile(createPhoto)
		if err != nil {
			return fmt.Errorf("reading photo: %w", err)
		}
		attachment = &types.Attachment{Filename: filepath.Base(createPhoto), Data: data}
	}

	session, cleanup, err := newSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := session.Create(cmd.Context(), fields, attachment)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s record %s\n", args[0], id)
	return nil
}

// applyCreateDefaults fills submitter identity and, for huddles, the current
// week when the caller did not set them.
func applyCreateDefaults(reportType string, fields map[string]any) {
	if reportType == types.ReportBBS && currentUser.EmployeeID != "" {
		setIfAbsent(fields, "observer_id", currentUser.EmployeeID)
		setIfAbsent(fields, "observer_name", currentUser.Name)
	}
	if reportType == types.ReportHuddle {
		week := weeks.Current(time.Now())
		setIfAbsent(fields, "year", week.Year)
		setIfAbsent(fields, "week", week.Week)
	}
	if reportType != types.ReportEmployee {
		setIfAbsent(fields, "date", time.Now().Format("2006-01-02"))
	}
}

func setIfAbsent(fields map[string]any, name string, value any) {
	if _, ok := fields[name]; !ok {
		fields[name] = value
	}
}
