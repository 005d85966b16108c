package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cartSize string

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}

		cart := s.Cart()
		if len(cart) == 0 {
			fmt.Println("Your cart is empty.")
			return nil
		}
		for pid, sizes := range cart {
			for size, qty := range sizes {
				fmt.Printf("%-24s size %-10s × %d\n", pid, size, qty)
			}
		}
		fmt.Printf("\n%d items, subtotal %s%.2f (+ %s%.2f delivery)\n",
			s.CartCount(), s.Currency(), s.CartAmount(), s.Currency(), s.DeliveryFee())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		if err := s.AddToCart(cmd.Context(), args[0], cartSize); err != nil {
			return err
		}
		fmt.Printf("Added. Cart now holds %d items.\n", s.CartCount())
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set the quantity for a cart entry (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number: %w", err)
		}
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		if err := s.UpdateQuantity(cmd.Context(), args[0], cartSize, qty); err != nil {
			return err
		}
		fmt.Printf("Cart now holds %d items.\n", s.CartCount())
		return nil
	},
}

func init() {
	cartAddCmd.Flags().StringVar(&cartSize, "size", "", "size variant (required)")
	cartSetCmd.Flags().StringVar(&cartSize, "size", "", "size variant (required)")

	cartCmd.AddCommand(cartAddCmd, cartSetCmd)
	rootCmd.AddCommand(cartCmd)
}
