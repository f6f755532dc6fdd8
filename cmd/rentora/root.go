package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rentora",
	Short: "Rentora is a property rental management system",
	Long: `Rentora manages rental properties, tenants, leases, payments, and
maintenance requests behind a server-rendered web interface. Configuration
comes from the environment (or a .env file in the working directory).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(createAdminCmd)
}
