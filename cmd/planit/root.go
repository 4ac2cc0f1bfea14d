package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/client"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/localstore"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
)

var (
	verbose    bool
	configPath string
	apiURL     string
	outputFlag string
)

// app holds the per-invocation wiring built in PersistentPreRunE.
type app struct {
	cfg        Config
	store      *localstore.SQLite
	api        *client.Client
	pending    *planner.PendingStore
	drafts     *planner.DraftStore
	reconciler *planner.Reconciler
	searcher   *planner.Searcher
	out        output
}

var cur *app

var rootCmd = &cobra.Command{
	Use:           "planit",
	Short:         "Plan trips: search, stage and save itineraries",
	Long:          "planit searches attractions, hotels and activities through the plan-it-ahead API,\nstages the results you pick, and saves them into a server itinerary.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		out, err := parseOutput(outputFlag)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}

		store, err := localstore.OpenSQLite(cfg.StatePath)
		if err != nil {
			return err
		}
		api := client.New(cfg.APIURL, &http.Client{Timeout: cfg.Timeout}, logger)

		pending := planner.NewPendingStore(store, logger)
		drafts := planner.NewDraftStore(store, logger)
		cur = &app{
			cfg:        cfg,
			store:      store,
			api:        api,
			pending:    pending,
			drafts:     drafts,
			reconciler: planner.NewReconciler(pending, drafts, api, logger),
			searcher:   planner.NewSearcher(api, logger),
			out:        out,
		}
		logger.Debug("planit ready", "api_url", cfg.APIURL, "state_path", cfg.StatePath)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cur == nil {
			return nil
		}
		return cur.store.Close()
	},
}

// Execute runs the root command. Errors are printed as user-facing messages.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", planner.Message(err))
		if cur != nil {
			_ = cur.store.Close()
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Override the API base URL")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "Output format: table, json or yaml")
}
