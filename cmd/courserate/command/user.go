package command

import (
	"errors"
	"fmt"

	"github.com/alexschwind/ratemycourses/database"
	"github.com/alexschwind/ratemycourses/internal/middleware/auth"
	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	Long: `Create a user with the admin role. Admin accounts manage the course
catalog and the moderation queue; they are created here instead of the
public registration endpoint, which only hands out the user role.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(adminPassword) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		hashed, err := auth.Hashpassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			ID:           uuid.New().String(),
			Username:     adminUsername,
			Email:        adminEmail,
			PasswordHash: hashed,
			Role:         models.RoleAdmin,
		}

		userRepo := repository.NewUserRepository(db)
		if err := userRepo.CreateWithProfile(user, models.NewDefaultProfile(user.ID)); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return fmt.Errorf("username or email already taken")
			}
			return fmt.Errorf("failed to create admin: %w", err)
		}

		fmt.Printf("Admin %q created (%s)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	createAdminCmd.MarkFlagRequired("username")
	createAdminCmd.MarkFlagRequired("email")
	createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)
}
