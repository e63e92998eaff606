package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/api"
	"github.com/zytra-commerce/zytra-client/internal/auth"
	"github.com/zytra-commerce/zytra-client/internal/cart"
	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/config"
	"github.com/zytra-commerce/zytra-client/internal/logging"
	"github.com/zytra-commerce/zytra-client/internal/order"
	"github.com/zytra-commerce/zytra-client/internal/review"
	"github.com/zytra-commerce/zytra-client/internal/session"
	"github.com/zytra-commerce/zytra-client/internal/ui"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

func main() {
	var apiURL string
	root := &cobra.Command{
		Use:   "zytra",
		Short: "Terminal storefront for the Zytra commerce platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(apiURL)
		},
	}
	root.Flags().StringVar(&apiURL, "api-url", "", "backend base URL (overrides ZYTRA_API_URL)")
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(apiURL string) error {
	cfg := config.Load()
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	log, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	sess := session.New()
	client := api.New(cfg.APIURL, cfg.Timeout, sess, log)

	deps := &ui.Deps{
		Session: sess,
		Auth:    auth.NewClient(client, sess),
		Catalog: catalog.NewClient(client),
		Review:  review.NewClient(client),
		User:    user.NewClient(client),
		Cart:    cart.NewClient(client),
		Order:   order.NewClient(client),
		Admin:   admin.NewClient(client, sess),
		Log:     log,
	}

	p := tea.NewProgram(ui.NewRoot(deps), tea.WithAltScreen())

	// any 401 anywhere interrupts the UI with a forced sign-out
	client.SetUnauthorizedHook(func() {
		p.Send(ui.SessionExpiredMsg{})
	})

	log.Infow("starting", "api", cfg.APIURL)
	_, err = p.Run()
	return err
}
