package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/go-saleor-client/auth"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password and keep the session tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = a.cfg.Auth.Email
			}
			if password == "" {
				password = a.cfg.Auth.Password
			}
			if email == "" || password == "" {
				return errors.New("email and password are required (--email/--password or SALEOR_AUTH_EMAIL/SALEOR_AUTH_PASSWORD)")
			}
			session, err := a.loadSession()
			if err != nil {
				return err
			}
			tokens, err := session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s%s\n", email, expiry(tokens.Token))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email, defaults to auth.email")
	cmd.Flags().StringVar(&password, "password", "", "account password, defaults to auth.password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the session tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if all {
				client, err := a.authorizedClient(ctx)
				if err != nil {
					return err
				}
				if err := client.TokensDeactivateAll(ctx); err != nil {
					return fmt.Errorf("failed to deactivate tokens: %w", err)
				}
			}
			session, err := a.loadSession()
			if err != nil {
				return err
			}
			if err := session.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also invalidate every token of the account on the server")
	return cmd
}

func newRefreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Obtain a new access token with the stored refresh token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.loadSession()
			if err != nil {
				return err
			}
			token, err := session.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token refreshed%s\n", expiry(token))
			return nil
		},
	}
}

func newVerifyCmd(a *app) *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "verify [token]",
		Short: "Ask the API whether a token, by default the stored access token, is valid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				session, err := a.loadSession()
				if err != nil {
					return err
				}
				tokens, err := session.Tokens(ctx)
				if err != nil {
					return err
				}
				token = tokens.Token
			}
			p, err := a.client().TokenVerify(ctx, token)
			if p == nil {
				return err
			}
			if perr := printJSON(cmd, p, field); perr != nil {
				return perr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "print only this field of the result (gjson path, e.g. user.email)")
	return cmd
}

func newMeCmd(a *app) *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.authorizedClient(cmd.Context())
			if err != nil {
				return err
			}
			me, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, me, field)
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "print only this field of the result (gjson path, e.g. userPermissions.#.code)")
	return cmd
}

// expiry describes when token expires, if it says so.
func expiry(token string) string {
	claims, err := auth.ParseClaims(token)
	if err != nil || claims.ExpiresAt == nil {
		return ""
	}
	return fmt.Sprintf(", token expires at %s", claims.ExpiresAt.Time.Local().Format(time.RFC3339))
}
