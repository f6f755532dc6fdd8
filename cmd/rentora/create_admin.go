package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/velmariner/rentora/internal/config"
	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/services"
)

// create-admin restores the configured admin account: it creates the account
// when missing and otherwise resets its password, role, and active flag.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create or reset the admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		database, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}

		authService := services.NewAuthService(db.NewRepositories(database).Users)
		admin, created, err := authService.EnsureAdmin(cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword, true)
		if err != nil {
			return err
		}

		if created {
			fmt.Printf("created admin account %s\n", admin.Email)
		} else {
			fmt.Printf("reset admin account %s\n", admin.Email)
		}
		return nil
	},
}
