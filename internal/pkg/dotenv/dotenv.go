package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the env files (".env" when none given) without overriding variables
// already set in the environment, then applies command line overrides:
//
//	-port     overrides PORT
//	-migrate  sets POSTGRES_MIGRATE_ON_START=true
func Load(args []string, files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("load env files: %w", err)
	}

	fs := flag.NewFlagSet("loadhive", flag.ContinueOnError)
	port := fs.String("port", "", "Server port (overrides PORT environment variable)")
	migrate := fs.Bool("migrate", false, "Apply database migrations on start")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *port != "" {
		if err := os.Setenv("PORT", *port); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	if *migrate {
		if err := os.Setenv("POSTGRES_MIGRATE_ON_START", "true"); err != nil {
			return fmt.Errorf("failed to set POSTGRES_MIGRATE_ON_START environment variable: %w", err)
		}
	}
	return nil
}
