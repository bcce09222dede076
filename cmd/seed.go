package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "taskflow.com/taskflow/internal/configs"
	"taskflow.com/taskflow/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the database and load demo data",
	Long:  "Clears every table and reloads the JSON seed files from the seed data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		if err := seed.Run(database, cfg.SeedDataDir); err != nil {
			return err
		}

		log.Println("seed completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
