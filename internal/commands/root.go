package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamboard/teamboard/internal/api"
	"github.com/teamboard/teamboard/internal/config"
	"github.com/teamboard/teamboard/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "teamboard",
	Short: "A terminal client for the teamboard project management backend",
	Long: `teamboard is a terminal dashboard for managing projects, tasks and
employees. Log in once and the session persists across invocations; what you
can see and change depends on your role (PM or EMPLOYEE).`,
}

// app bundles the pieces every command needs: config, session store, the
// authenticated client and the auth gateway.
type app struct {
	cfg     *config.Config
	store   *session.Store
	client  *api.Client
	gateway *api.Gateway
	sess    session.Session
}

// newApp loads the config and opens the session store.
func newApp() (*app, error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := session.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate session database: %w", err)
	}
	store, err := session.Open(dbPath)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.BaseURL, cfg.Timeout, store.Token)

	return &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		gateway: api.NewGateway(client, store),
		sess:    store.Current(),
	}, nil
}

// requireLogin is newApp plus an authentication check.
func requireLogin() (*app, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}
	if !a.sess.IsAuthenticated() {
		a.Close()
		return nil, fmt.Errorf("not logged in. Run 'teamboard login <username>' first")
	}
	return a, nil
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("teamboard %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(versionCmd)
}
