package command

import (
	"fmt"
	"time"

	"github.com/alexschwind/ratemycourses/database"
	"github.com/alexschwind/ratemycourses/internal/repository"

	"github.com/spf13/cobra"
)

var purgeTokensCmd = &cobra.Command{
	Use:   "purge-tokens",
	Short: "Delete expired refresh tokens",
	Long: `Remove refresh tokens past their expiry from the database. Expired
tokens are rejected on use either way, this just keeps the table small.
Meant to run from a cron job.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		n, err := repository.NewRefreshTokenRepository(db).DeleteExpired(time.Now())
		if err != nil {
			return fmt.Errorf("failed to purge tokens: %w", err)
		}

		fmt.Printf("Deleted %d expired refresh tokens\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeTokensCmd)
}
