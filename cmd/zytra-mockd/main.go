// zytra-mockd serves the in-memory stand-in backend on the port the client
// expects, seeded with a browsable catalog and demo accounts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zytra-commerce/zytra-client/internal/logging"
	"github.com/zytra-commerce/zytra-client/internal/mockserver"
)

func main() {
	var (
		addr   string
		secret string
		noSeed bool
	)

	root := &cobra.Command{
		Use:   "zytra-mockd",
		Short: "In-memory Zytra backend for demos and development",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New("zytra-mockd.log", true)
			if err != nil {
				return err
			}
			defer log.Sync()

			store := mockserver.NewStore()
			if !noSeed {
				store.Seed()
				log.Infow("seeded demo data", "user", "demo/Demo@123", "admin", "admin/Admin@123")
			}
			return mockserver.New(store, secret, log).Listen(addr)
		},
	}
	root.Flags().StringVar(&addr, "addr", ":7654", "listen address")
	root.Flags().StringVar(&secret, "secret", "zytra-dev-secret", "JWT signing secret")
	root.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty store")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
