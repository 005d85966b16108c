package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thakoorchandan/navswara-go/models"
)

var paymentFlags models.PaymentMethod

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List saved payment methods",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		payments := s.Payments()
		if len(payments) == 0 {
			fmt.Println("No saved payment methods.")
			return nil
		}
		for i, p := range payments {
			fmt.Printf("[%d] %-12s %s •••• %s  %02d/%d\n", i, p.Label, p.Brand, p.Last4, p.ExpMonth, p.ExpYear)
		}
		return nil
	},
}

var paymentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new payment method",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		return s.AddPaymentMethod(cmd.Context(), paymentFlags)
	},
}

var paymentDeleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the payment method at an index (refetches first)",
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
		return s.DeletePaymentMethod(cmd.Context(), index)
	},
}

func init() {
	paymentAddCmd.Flags().StringVar(&paymentFlags.Label, "label", "", "display label")
	paymentAddCmd.Flags().StringVar(&paymentFlags.Brand, "brand", "", "card brand")
	paymentAddCmd.Flags().StringVar(&paymentFlags.Last4, "last4", "", "last four digits")
	paymentAddCmd.Flags().IntVar(&paymentFlags.ExpMonth, "exp-month", 0, "expiry month")
	paymentAddCmd.Flags().IntVar(&paymentFlags.ExpYear, "exp-year", 0, "expiry year")
	paymentAddCmd.MarkFlagRequired("last4") //nolint:errcheck

	paymentsCmd.AddCommand(paymentAddCmd, paymentDeleteCmd)
	rootCmd.AddCommand(paymentsCmd)
}
