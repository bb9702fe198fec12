package command

// root.go defines the root command for the courserate admin CLI.

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexschwind/ratemycourses/database"
	"github.com/alexschwind/ratemycourses/internal/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "courserate",
	Short: "courserate - course rating platform admin tools",
	Long: `courserate bundles the administrative tasks that should not go through
the HTTP API: bootstrapping an admin account, bulk-importing the course
catalog from CSV exports and cleaning up expired refresh tokens.

All commands read the same environment (.env) as the API server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase connects with the server configuration. Log output is kept
// at warn level so command output stays readable.
func openDatabase() (*gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return database.ConnectDB(cfg, logger)
}
