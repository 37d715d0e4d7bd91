// Package cli is the cobra command tree over the cashbook services. Commands
// are thin: they parse flags, call a service facade, and render the result.
package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/client"
	"github.com/tresahq/cashbook_cli/internal/core/services"
	"github.com/tresahq/cashbook_cli/internal/platform/config"
	"github.com/tresahq/cashbook_cli/internal/platform/logging"
	"github.com/tresahq/cashbook_cli/internal/repositories/database/sqlite"
	"github.com/tresahq/cashbook_cli/internal/session"
)

// app holds the wired dependencies every command reaches through. It is
// rebuilt once per process in the root command's PersistentPreRunE.
type app struct {
	cfg      *config.Config
	session  *session.Manager
	client   *client.Client
	services *services.Container

	// localStore is opened lazily; only offline commands pay for it.
	localStore *sqlite.LocalBookRepository
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "cashbookctl",
	Short:         "Manage cashbooks, entries and workspaces from the terminal",
	Long:          `cashbookctl is the terminal client for the cashbook API: workspaces, cashbooks, ledger entries, members and metadata, plus an offline local book store that works without a server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.close()
		}
	},
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.Setup(cfg.LogLevel)

	sess := session.NewManager(cfg.SessionFile)
	if err := sess.Load(); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, session: sess}
	a.client = client.New(cfg.APIBaseURL, sess,
		client.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		client.WithLogger(logger),
		client.WithUnauthenticatedHook(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'cashbookctl login' to sign in again.")
		}),
	)
	a.services = services.NewServiceContainer(a.client, cache.New(), nil)
	return a, nil
}

// local opens the offline store on first use and returns its service facade.
func (a *app) local() (*services.Container, error) {
	if a.localStore == nil {
		store, err := sqlite.New(a.cfg.LocalStorePath)
		if err != nil {
			return nil, err
		}
		a.localStore = store
		a.services = services.NewServiceContainer(a.client, cache.New(), store)
	}
	return a.services, nil
}

func (a *app) close() {
	if a.localStore != nil {
		_ = a.localStore.Close()
	}
}

// requireAuth gates commands that talk to the API behind a signed-in session.
func (a *app) requireAuth() error {
	if !a.session.Authenticated() {
		return fmt.Errorf("not signed in; run 'cashbookctl login' first")
	}
	return nil
}

// resolveWorkspace returns the --workspace flag value, falling back to the
// session's active workspace.
func (a *app) resolveWorkspace(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if id := a.session.ActiveWorkspace(); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no workspace selected; pass --workspace or run 'cashbookctl workspace use <id>'")
}

// Execute runs the root command; it is the CLI entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", renderError(err))
		os.Exit(1)
	}
}
