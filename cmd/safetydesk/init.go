// Init command: scaffold the config file and data directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const configTemplate = `# SafetyDesk configuration.
# Set exactly one of backend_url or data_dir.
#backend_url: http://localhost:8080
data_dir: %s

user:
  employee_id: ""
  name: ""
  role: "admin"
`

var initDataDir string

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file and data directory",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	cmd.Flags().StringVar(&initDataDir, "data-dir", ".safetydesk", "data directory to create")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat("safetydesk.yaml"); err == nil {
		return fmt.Errorf("safetydesk.yaml already exists")
	}
	if err := os.MkdirAll(initDataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	content := fmt.Sprintf(configTemplate, initDataDir)
	if err := os.WriteFile("safetydesk.yaml", []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Println("Initialized safetydesk.yaml")
	return nil
}
