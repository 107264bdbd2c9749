// Root command: global flags, config loading, and subcommand registration.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kilnworks/safetydesk/pkg/types"
)

// Exit codes.
const (
	exitSuccess  = 0
	exitUserErr  = 1
	exitSysError = 2
)

var (
	flagConfigFile string
	flagBackendURL string
	flagDataDir    string
	jsonOutput     bool

	cfg         types.Config
	currentUser types.User
)

var rootCmd = &cobra.Command{
	Use:   "safetydesk",
	Short: "Browse and triage safety report records",
	Long: `Safetydesk browses, filters, triages, and exports safety report records
(behavior observations, near-miss reports, inspections, employees, huddles)
against a REST backend or a local store.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./safetydesk.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBackendURL, "backend-url", "", "REST backend base URL")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "local store directory")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newSetStatusCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newEmailCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWeekCmd())
}

// loadConfig resolves configuration from flags, environment, and the config
// file, in that order of precedence. The current user is loaded here once
// and passed down as a value; commands never read it ad hoc.
func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if flagConfigFile != "" {
		v.SetConfigFile(flagConfigFile)
	} else {
		v.SetConfigName("safetydesk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.safetydesk")
		}
	}
	v.SetEnvPrefix("SAFETYDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	cfg = types.Config{
		BackendURL: v.GetString("backend_url"),
		DataDir:    v.GetString("data_dir"),
	}
	if flagBackendURL != "" {
		cfg.BackendURL = flagBackendURL
		cfg.DataDir = ""
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
		cfg.BackendURL = ""
	}
	if cfg.BackendURL == "" && cfg.DataDir == "" {
		cfg.DataDir = ".safetydesk"
	}

	currentUser = types.User{
		EmployeeID: v.GetString("user.employee_id"),
		Name:       v.GetString("user.name"),
		Role:       v.GetString("user.role"),
	}
	return cfg.Validate()
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserErr)
	}
}
