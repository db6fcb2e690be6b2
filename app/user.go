package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db"
	"github.com/atik-theme/atik-assistant/internal/uniuri"
)

const generatedPasswordLen = 16

func init() { //nolint: gochecknoinits
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "E-mail address")
	userCreateCmd.Flags().StringVar(&userRole, "role", auth.RoleEditor, "Role name")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "Password, generated when empty")
	userResetCmd.Flags().StringVar(&userPassword, "password", "", "Password, generated when empty")

	userCmd.AddCommand(userCreateCmd, userResetCmd, userDisableCmd)
	rootCmd.AddCommand(userCmd)
}

// openDB reads the configuration and opens the migrated database.
func openDB() (*gorm.DB, error) {
	c, err := config.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	return db.Open(&c)
}

func passwordOrGenerated(cmd *cobra.Command) string {
	if userPassword != "" {
		return userPassword
	}

	password := uniuri.NewLen(generatedPasswordLen)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "generated password:", password)

	return password
}

var (
	userEmail    string
	userRole     string
	userPassword string

	userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage admin accounts",
	}

	userCreateCmd = &cobra.Command{
		Use:   "create <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDB()
			if err != nil {
				return err
			}

			authService := auth.NewService(conn)
			if err = authService.SeedRoles(); err != nil {
				return err
			}

			role, err := authService.RoleByName(userRole)
			if err != nil {
				return err
			}

			email := userEmail
			if email == "" {
				email = args[0] + "@localhost"
			}

			_, err = auth.NewLocalProvider(conn).CreateUser(args[0], email, passwordOrGenerated(cmd), args[0], role.ID)

			return err
		},
	}

	userResetCmd = &cobra.Command{
		Use:   "reset-password <username>",
		Short: "Set a new password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDB()
			if err != nil {
				return err
			}

			local := auth.NewLocalProvider(conn)

			user, err := local.GetUserByUsername(args[0])
			if err != nil {
				return err
			}

			return local.ResetPassword(user.ID, passwordOrGenerated(cmd))
		},
	}

	userDisableCmd = &cobra.Command{
		Use:   "disable <username>",
		Short: "Deactivate an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			conn, err := openDB()
			if err != nil {
				return err
			}

			local := auth.NewLocalProvider(conn)

			user, err := local.GetUserByUsername(args[0])
			if err != nil {
				return err
			}

			return local.DeactivateUser(user.ID)
		},
	}
)
