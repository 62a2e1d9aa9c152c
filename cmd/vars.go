package cmd

import (
	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/cache"
	"github.com/Hashim-Bhagad/FitFork/calendar"
	"github.com/Hashim-Bhagad/FitFork/config"
	"github.com/Hashim-Bhagad/FitFork/logs"
	"github.com/Hashim-Bhagad/FitFork/session"
)

var verboseLoggingEnabled bool
var apiHost string
var cachePath string

func bindFlags() {
	rootCmd.PersistentFlags().BoolVarP(&verboseLoggingEnabled, "verbose", "v", false, "print verbose messages")
	rootCmd.PersistentFlags().StringVar(&apiHost, "api-host", "", "FitFork service URL (overrides FITFORK_API_HOST)")
	rootCmd.PersistentFlags().StringVarP(&cachePath, "cache", "c", "", "use a specific cache file")
}

// current holds the wired application for the running command. There is
// exactly one, built in the root command's PersistentPreRunE; every
// component receives its collaborators explicitly from here.
var current *app

type app struct {
	cfg      *config.Config
	cache    *cache.Store
	gateway  *api.Gateway
	session  *session.Store
	flow     *session.Flow
	calendar *calendar.Connector
}

// buildApp wires the composition root: the persistent cache, the gateway
// reading tokens from it, the single process-wide session store, and the
// expiry watcher subscribed to the gateway's SessionExpired classification.
func buildApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if apiHost != "" {
		cfg.APIHost = apiHost
	}
	if cachePath != "" {
		cfg.CachePath = cachePath
	}

	store, err := cache.Open(cfg.CachePath)
	if err != nil {
		return err
	}

	gateway := api.New(cfg.APIHost, store, cfg.HTTPTimeout)
	sessions := session.NewStore(store)
	session.NewExpiryWatcher(sessions, cliNavigator{}).Subscribe(gateway)

	current = &app{
		cfg:      cfg,
		cache:    store,
		gateway:  gateway,
		session:  sessions,
		flow:     session.NewFlow(gateway, sessions),
		calendar: calendar.NewConnector(gateway),
	}
	current.session.MarkVisited()
	return nil
}

// cliNavigator is the CLI's stand-in for routing to the login view: it tells
// the user to sign in again. The login command itself never triggers it,
// since a login 401 classifies as InvalidCredentials.
type cliNavigator struct{}

func (cliNavigator) ToLogin(expired bool) {
	if expired {
		logs.Error("Your session has expired. Run \"fitfork login\" to sign in again.")
		return
	}
	logs.Error("Run \"fitfork login\" to sign in.")
}
