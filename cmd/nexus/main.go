package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/devakitechdata/nexus-analytics/internal/assistant"
	"github.com/devakitechdata/nexus-analytics/internal/cli"
	"github.com/devakitechdata/nexus-analytics/internal/dataset"
	"github.com/devakitechdata/nexus-analytics/internal/db"
	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/devakitechdata/nexus-analytics/internal/importer"
	"github.com/devakitechdata/nexus-analytics/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.nexus/nexus.db
	dbPath := os.Getenv("NEXUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".nexus", "nexus.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	datasetRepo := repository.NewSQLiteDatasetRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	submissionRepo := repository.NewSQLiteSubmissionRepo(database)

	// Chat telemetry goes to stderr only when asked for.
	var observer assistant.ChatObserver = assistant.NoopObserver{}
	if os.Getenv("NEXUS_LOG") != "" {
		observer = assistant.NewLogObserver(os.Stderr)
	}

	router := assistant.NewRouter(
		dataset.NewCache(datasetRepo),
		profileRepo,
		submissionRepo,
		profileRepo,
		observer,
	)

	app := &cli.App{
		Router:   router,
		Identity: identityFromEnv(),
		Importer: importer.New(database),
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// identityFromEnv reads NEXUS_ROLE and NEXUS_USER. A missing or invalid role
// leaves the identity empty; the shell prompts for one and the ask command
// requires --role.
func identityFromEnv() assistant.Identity {
	var id assistant.Identity
	if role := os.Getenv("NEXUS_ROLE"); domain.ValidRoles[role] {
		id.Role = domain.Role(role)
	}
	if raw := os.Getenv("NEXUS_USER"); raw != "" {
		if key, err := strconv.ParseInt(raw, 10, 64); err == nil {
			id.UserKey = key
		}
	}
	return id
}
