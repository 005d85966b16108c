package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thakoorchandan/navswara-go/client"
	"github.com/thakoorchandan/navswara-go/config"
	"github.com/thakoorchandan/navswara-go/session"
	"github.com/thakoorchandan/navswara-go/shop"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "NavSwara storefront in your terminal",
	Long: `storefront is a terminal client for the NavSwara commerce API.

Browse the catalog, manage your cart and addresses, and place orders.
Sessions persist between runs; sign in once with "storefront login".`,
	SilenceUsage: true,
}

// newShop builds the state container every command works against.
func newShop() (*shop.Shop, error) {
	cfg := config.Load()

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		var err error
		tokenPath, err = session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve token path: %w", err)
		}
	}

	return shop.New(shop.Options{
		Client:      client.New(cfg.BackendURL),
		Sessions:    &session.FileStore{Path: tokenPath},
		Currency:    cfg.Currency,
		DeliveryFee: cfg.DeliveryFee,
	}), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
