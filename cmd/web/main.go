package main

import (
	"fmt"
	"net"
	"os"
	"os/user"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/server"
	"github.com/venture-tools/plan-atlas/pkg/services/config"
	docsvc "github.com/venture-tools/plan-atlas/pkg/services/document"
	"github.com/venture-tools/plan-atlas/pkg/services/finance"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan/collectors"
	plansvc "github.com/venture-tools/plan-atlas/pkg/services/plan"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
	docstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/document"
	planstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/plan"
	scanstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/scan"
)

var sitesPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Plan Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.plan-atlas/sites.ini", usr.HomeDir)

	rootCmd.Flags().StringVarP(&sitesPath, "sites", "s", defaultPath,
		"Path to the site profiles file (default is $HOME/.plan-atlas/sites.ini)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.NewRegistry(sitesPath)
	if err != nil {
		return fmt.Errorf("failed to create site registry: %w", err)
	}

	dbPath := os.Getenv("PLAN_ATLAS_DB")
	if dbPath == "" {
		dbPath = "plan-atlas.db"
	}
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	planStore, err := planstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create plan store: %w", err)
	}
	documentStore, err := docstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create document store: %w", err)
	}
	scanStore, err := scanstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create scan store: %w", err)
	}

	statements, err := finance.NewDefaultController()
	if err != nil {
		return fmt.Errorf("failed to create statement controller: %w", err)
	}

	collectorRegistry, err := collectors.NewDefaultRegistry()
	if err != nil {
		return fmt.Errorf("failed to create collector registry: %w", err)
	}
	scanner := netscan.NewScanner(collectorRegistry)

	sites, _ := registry.GetSites(ctx)
	logger.Info().Msgf("Site profiles loaded from `%s`.", sitesPath)
	for _, site := range sites {
		logger.Info().Msgf("Site: `%s`", site)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Plans:     plansvc.NewService(planStore, statements),
			Documents: docsvc.NewService(documentStore),
			Sites:     registry,
			Scanner:   scanner,
			Monitors:  netscan.NewController(scanner, scanStore),
			Scans:     scanStore,
		},
	})

	return api.Start()
}
