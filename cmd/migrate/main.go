// cmd/migrate/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/campusloop/campusloop/internal/config"
	"github.com/campusloop/campusloop/internal/model"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var dsn string

func init() {
	rootCmd.PersistentFlags().StringVarP(&dsn, "dsn", "d", "", "Database connection string (defaults to env config)")
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate manages the campusloop database schema",
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := openDB()
		if err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}

		// citext backs the case-insensitive email column.
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
			log.Fatalf("Failed to create citext extension: %v", err)
		}

		err = db.AutoMigrate(
			&model.User{},
			&model.Team{},
			&model.TeamMember{},
			&model.TeamInvitation{},
			&model.Event{},
			&model.EventParticipant{},
			&model.TeamRegistration{},
			&model.TeamRegistrationMember{},
			&model.Notification{},
			&model.Certificate{},
		)
		if err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Schema applied")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("migrate v0.3.0")
	},
}

func openDB() (*gorm.DB, error) {
	if dsn == "" {
		cfg := config.Load()
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
