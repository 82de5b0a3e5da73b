package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/venture-tools/plan-atlas/pkg/adapters"
	"github.com/venture-tools/plan-atlas/pkg/export"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	terminalexport "github.com/venture-tools/plan-atlas/pkg/runtime/terminal/export"
	"github.com/venture-tools/plan-atlas/pkg/services/config"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan"
	"github.com/venture-tools/plan-atlas/pkg/services/netscan/collectors"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
	scanstore "github.com/venture-tools/plan-atlas/pkg/store/sqlite/scan"
)

var (
	sitesPath string
	site      string
	dbPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netscan",
		Short: "Wireless site survey tool",
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.plan-atlas/sites.ini", usr.HomeDir)

	rootCmd.PersistentFlags().StringVarP(&sitesPath, "sites", "s", defaultPath,
		"Path to the site profiles file (default is $HOME/.plan-atlas/sites.ini)")
	rootCmd.PersistentFlags().StringVar(&site, "site", "default", "Site profile to survey")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database keeping the scan history (optional)")

	rootCmd.AddCommand(newSitesCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newMonitorCmd())
	rootCmd.AddCommand(newHistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newSitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List configured site profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := config.NewRegistry(sitesPath)
			if err != nil {
				return fmt.Errorf("failed to load site profiles: %w", err)
			}

			sites, err := registry.GetSites(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range sites {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func newScanCmd() *cobra.Command {
	var outKML, outCSV, outSVG string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Survey a site once and print the report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()
			ctx := logger.WithContext(cmd.Context())

			scanner, profile, err := buildScanner(ctx)
			if err != nil {
				return err
			}

			snapshot, err := scanner.Scan(ctx, profile)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if err := persistSnapshot(ctx, snapshot); err != nil {
				return err
			}

			if outKML != "" {
				if err := writeFile(outKML, func(f *os.File) error { return export.WriteKML(f, snapshot) }); err != nil {
					return err
				}
			}
			if outCSV != "" {
				if err := writeFile(outCSV, func(f *os.File) error { return export.WriteScanCSV(f, snapshot) }); err != nil {
					return err
				}
			}
			if outSVG != "" {
				err := writeFile(outSVG, func(f *os.File) error {
					export.WriteTopologySVG(f, snapshot)
					return nil
				})
				if err != nil {
					return err
				}
			}

			reporter := terminalexport.NewReporter(cmd.OutOrStdout())
			return reporter.Handle(netscan.SnapshotReport(snapshot))
		},
	}

	cmd.Flags().StringVar(&outKML, "out-kml", "", "Write access point placemarks to this KML file")
	cmd.Flags().StringVar(&outCSV, "out-csv", "", "Write the access point list to this CSV file")
	cmd.Flags().StringVar(&outSVG, "out-svg", "", "Write the topology map to this SVG file")

	return cmd
}

func newMonitorCmd() *cobra.Command {
	var intervalSec int

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Rescan a site on an interval until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx = logger.WithContext(ctx)

			scanner, profile, err := buildScanner(ctx)
			if err != nil {
				return err
			}

			var store scanstore.Store
			if dbPath != "" {
				db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
				if err != nil {
					return fmt.Errorf("failed to open database: %w", err)
				}
				if store, err = scanstore.NewStore(db); err != nil {
					return err
				}
			}

			runner := netscan.NewRunner(profile, scanner, store, netscan.RunnerConfig{
				Interval: time.Duration(intervalSec) * time.Second,
			})
			go runner.Run(ctx)

			for progress := range runner.Progress() {
				logger.Info().
					Int("tick", progress.Ticks).
					Int("access_points", progress.AccessPoints).
					Time("taken_at", progress.TakenAt).
					Msg("scan completed")
			}
			<-runner.Done()

			status := runner.Status()
			logger.Info().Int("ticks", status.Ticks).Str("status", string(status.Status)).Msg("monitor finished")
			return nil
		},
	}

	cmd.Flags().IntVar(&intervalSec, "interval", 30, "Seconds between scans")

	return cmd
}

func newHistoryCmd() *cobra.Command {
	var limit int
	var clear bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Summarize the stored scans of a site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				return fmt.Errorf("history requires --db")
			}

			db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			store, err := scanstore.NewStore(db)
			if err != nil {
				return err
			}

			if clear {
				count, err := store.Clear(cmd.Context(), site)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d stored scans for %s\n", count, site)
				return nil
			}

			records, err := store.List(cmd.Context(), site, limit)
			if err != nil {
				return err
			}

			snapshots := make([]*domain.ScanSnapshot, 0, len(records))
			for _, record := range records {
				snapshot, err := adapters.MapScanRecordToDomain(record)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping unreadable scan %s: %v\n", record.ID, err)
					continue
				}
				snapshots = append(snapshots, &snapshot)
			}

			out := cmd.OutOrStdout()
			for _, snapshot := range snapshots {
				fmt.Fprintf(out, "%s  %s  %d access points, %d devices\n",
					snapshot.TakenAt.Format(time.RFC3339), snapshot.ID,
					len(snapshot.AccessPoints), len(snapshot.Devices))
			}

			reporter := terminalexport.NewReporter(out)
			return reporter.Handle(netscan.StatsReport(site, netscan.ComputeStats(snapshots)))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Only consider the most recent N scans (0 means all)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Drop the stored scans instead of summarizing them")

	return cmd
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func buildScanner(ctx context.Context) (netscan.Scanner, domain.SiteProfile, error) {
	registry, err := config.NewRegistry(sitesPath)
	if err != nil {
		return nil, domain.SiteProfile{}, fmt.Errorf("failed to load site profiles: %w", err)
	}

	profile, err := registry.GetProfile(ctx, site)
	if err != nil {
		return nil, domain.SiteProfile{}, err
	}

	collectorRegistry, err := collectors.NewDefaultRegistry()
	if err != nil {
		return nil, domain.SiteProfile{}, err
	}
	return netscan.NewScanner(collectorRegistry), profile, nil
}

func persistSnapshot(ctx context.Context, snapshot *domain.ScanSnapshot) error {
	if dbPath == "" {
		return nil
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	store, err := scanstore.NewStore(db)
	if err != nil {
		return err
	}

	record, err := adapters.MapScanSnapshotToStore(snapshot)
	if err != nil {
		return err
	}
	return store.Add(ctx, record)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
