// Package cli implements the saleorctl commands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	saleor "github.com/llehouerou/go-saleor-client"
	"github.com/llehouerou/go-saleor-client/auth"
	"github.com/llehouerou/go-saleor-client/internal/config"
	"github.com/llehouerou/go-saleor-client/internal/logger"
)

// app is the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	url     string
	debug   bool

	cfg     *config.Config
	logger  *zap.Logger
	session *auth.Session
	closer  func() error
}

// Execute runs saleorctl and releases what the invocation opened, whether
// or not the command succeeded.
func Execute(ctx context.Context) error {
	cmd, a := newRootCmd()
	return a.execute(ctx, cmd)
}

func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if cerr := a.close(); cerr != nil {
		return errors.Join(err, cerr)
	}
	return err
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "saleorctl",
		Short:         "Command line client for the Saleor GraphQL API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./saleorctl.yaml or $HOME/.config/saleorctl/saleorctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.url, "url", "", "GraphQL endpoint, overrides api.url")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "attach request and response details to errors")

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newRefreshCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newMeCmd(a))
	rootCmd.AddCommand(newDocumentCmd())
	rootCmd.AddCommand(newIDCmd())

	return rootCmd, a
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("url") {
		cfg.API.URL = a.url
	}
	if cmd.Flags().Changed("debug") {
		cfg.API.Debug = a.debug
	}
	if err := cfg.API.Validate(); err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Logger())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	closer := a.closer
	a.closer = nil
	a.session = nil
	if closer != nil {
		return closer()
	}
	return nil
}

// client returns an anonymous API client.
func (a *app) client() *saleor.Client {
	httpClient := &http.Client{Timeout: a.cfg.API.Timeout}
	return saleor.NewClient(a.cfg.API.URL, httpClient).
		WithLogger(a.logger).
		WithRetry(a.cfg.Retry.GraphQL()).
		WithDebug(a.cfg.API.Debug)
}

func (a *app) store() (auth.TokenStore, error) {
	switch a.cfg.Store.Kind {
	case config.StoreMemory:
		return auth.NewMemoryStore(), nil
	case config.StoreRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr: a.cfg.Store.RedisAddr,
			DB:   a.cfg.Store.RedisDB,
		})
		a.closer = client.Close
		return auth.NewRedisStore(client, a.cfg.Store.Key), nil
	default:
		path := a.cfg.Store.Path
		if path == "" {
			var err error
			if path, err = auth.DefaultSessionPath(); err != nil {
				return nil, err
			}
		}
		return auth.NewFileStore(path), nil
	}
}

// loadSession returns the session of the invocation. The token store is
// opened on first use.
func (a *app) loadSession() (*auth.Session, error) {
	if a.session != nil {
		return a.session, nil
	}
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	a.session = auth.NewSession(a.client().Authenticator(), store,
		auth.WithLeeway(a.cfg.Auth.RefreshLeeway),
		auth.WithLogger(a.logger),
	)
	return a.session, nil
}

// authorizedClient returns a client sending a valid access token.
func (a *app) authorizedClient(ctx context.Context) (*saleor.Client, error) {
	session, err := a.loadSession()
	if err != nil {
		return nil, err
	}
	token, err := session.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return a.client().WithAuthToken(token), nil
}

// printJSON writes v as indented JSON, or only the value at the gjson path
// field when it is set.
func printJSON(cmd *cobra.Command, v any, field string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if field == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	res := gjson.GetBytes(data, field)
	if !res.Exists() {
		return fmt.Errorf("field %q not found", field)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.String())
	return nil
}
