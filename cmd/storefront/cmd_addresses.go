package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thakoorchandan/navswara-go/models"
)

var addrFlags models.Address

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "List saved addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		addresses := s.Addresses()
		if len(addresses) == 0 {
			fmt.Println("No saved addresses.")
			return nil
		}
		for i, a := range addresses {
			fmt.Printf("[%d] %-8s %s, %s, %s %s, %s\n", i, a.Type, a.FullName, a.Line1, a.City, a.PostalCode, a.Country)
		}
		return nil
	},
}

var addressAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new address",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		return s.AddAddress(cmd.Context(), addrFlags)
	},
}

var addressDeleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the address at an index (refetches first)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		return s.DeleteAddress(cmd.Context(), index)
	},
}

func addressVarFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&addrFlags.FullName, "full-name", "", "recipient name")
	cmd.Flags().StringVar(&addrFlags.Line1, "line1", "", "address line 1")
	cmd.Flags().StringVar(&addrFlags.Line2, "line2", "", "address line 2")
	cmd.Flags().StringVar(&addrFlags.City, "city", "", "city")
	cmd.Flags().StringVar(&addrFlags.State, "state", "", "state")
	cmd.Flags().StringVar(&addrFlags.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&addrFlags.Country, "country", "", "country")
	cmd.Flags().StringVar(&addrFlags.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&addrFlags.Type, "type", models.AddressTypeHome, `address label: Home, Work, or a custom "Other" label`)
}

func init() {
	addressVarFlags(addressAddCmd)
	addressesCmd.AddCommand(addressAddCmd, addressDeleteCmd)
	rootCmd.AddCommand(addressesCmd)
}
