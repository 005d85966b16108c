package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx"

	"github.com/thakoorchandan/navswara-go/shop"
)

var (
	orderAddrIndex int
	orderMethod    string
	exportPath     string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		orders := s.Orders()
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%-40s %-14s %s%.2f  %s\n", o.ID, o.Status, s.Currency(), o.Amount, o.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the current cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		addresses := s.Addresses()
		if orderAddrIndex < 0 || orderAddrIndex >= len(addresses) {
			return fmt.Errorf("no saved address at index %d; add one with \"storefront addresses add\"", orderAddrIndex)
		}
		addr := addresses[orderAddrIndex]

		ctx := cmd.Context()
		switch orderMethod {
		case "cod":
			order, err := s.PlaceOrder(ctx, addr)
			if err != nil {
				return err
			}
			if err := s.RefreshCart(ctx); err != nil {
				return err
			}
			fmt.Printf("Order %s placed, total %s%.2f.\n", order.ID, s.Currency(), order.Amount)
		case "razorpay":
			gateway, err := s.CheckoutRazorpay(ctx, addr)
			if err != nil {
				return err
			}
			fmt.Printf("Complete payment for gateway order %s (%s %.2f), then run:\n", gateway.ID, gateway.Currency, gateway.Amount)
			fmt.Printf("  storefront verify razorpay %s\n", gateway.ID)
		case "stripe":
			sessionURL, err := s.CheckoutStripe(ctx, addr)
			if err != nil {
				return err
			}
			fmt.Printf("Open the checkout session to pay:\n  %s\n", sessionURL)
		default:
			return fmt.Errorf("unknown payment method %q (cod, razorpay, stripe)", orderMethod)
		}
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <razorpay|stripe> <ref> [session-id]",
	Short: "Confirm a hosted payment",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		switch args[0] {
		case "razorpay":
			return s.VerifyRazorpay(cmd.Context(), map[string]string{"razorpay_order_id": args[1]})
		case "stripe":
			if len(args) != 3 {
				return fmt.Errorf("stripe verification needs <order-id> <session-id>")
			}
			return s.VerifyStripe(cmd.Context(), args[1], args[2])
		}
		return fmt.Errorf("unknown gateway %q", args[0])
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live order status updates until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		updates, err := s.WatchOrders(cmd.Context())
		if err != nil {
			return err
		}
		for order := range updates {
			fmt.Printf("%s → %s\n", order.ID, order.Status)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export order history to an xlsx spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newShop()
		if err != nil {
			return err
		}
		if err := s.Init(cmd.Context()); err != nil {
			return err
		}
		return exportOrders(s, exportPath)
	},
}

func exportOrders(s *shop.Shop, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headers := []string{
		"OrderID", "Status", "PaymentStatus", "PaymentMethod",
		"Amount", "Items", "ShipTo", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range s.Orders() {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(string(o.PaymentStatus))
		row.AddCell().SetValue(o.PaymentMethod)
		row.AddCell().SetValue(o.Amount)

		items := 0
		for _, item := range o.Items {
			items += item.Quantity
		}
		row.AddCell().SetValue(strconv.Itoa(items))
		row.AddCell().SetValue(o.ShippingAddress.City + ", " + o.ShippingAddress.Country)
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Save(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func init() {
	checkoutCmd.Flags().IntVar(&orderAddrIndex, "address", 0, "index of the saved shipping address")
	checkoutCmd.Flags().StringVar(&orderMethod, "method", "cod", "payment method: cod, razorpay, stripe")
	exportCmd.Flags().StringVar(&exportPath, "out", "orders.xlsx", "output file")

	ordersCmd.AddCommand(checkoutCmd, watchCmd, exportCmd)
	rootCmd.AddCommand(ordersCmd, verifyCmd)
}
