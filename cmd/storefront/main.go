package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	shopapp "github.com/storefront/client/internal/application/shop"
	"github.com/storefront/client/internal/domain/shop"
	"github.com/storefront/client/internal/infrastructure/commerce"
	"github.com/storefront/client/internal/infrastructure/config"
	"github.com/storefront/client/internal/infrastructure/logger"
	"github.com/storefront/client/internal/interfaces/console"
)

func main() {
	root := newRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		// Failures have already been reported through the toast channel
		os.Exit(1)
	}
}

// app wires the storefront services behind the CLI commands.
type app struct {
	log      *zap.Logger
	store    *shopapp.Store
	catalog  *shopapp.Catalog
	checkout *shopapp.Checkout
}

// buildApp loads configuration and assembles the storefront session.
func buildApp() (*app, error) {
	// A local .env can supply overrides during development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := commerce.NewClient(&commerce.Config{
		BaseURL:        cfg.Store.BaseURL,
		StorePath:      cfg.Store.Path,
		TimeoutSeconds: cfg.Store.TimeoutSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store client: %w", err)
	}

	toaster := console.NewToaster(os.Stdout)
	modal := console.NewModal(os.Stdout)
	store := shopapp.NewStore(client, toaster, modal, log, cfg.UX.CartSpinnerHold)
	catalog := shopapp.NewCatalog(client, toaster, modal, store, log, cfg.UX.CatalogSpinnerHold)
	checkout := shopapp.NewCheckout(client, toaster, store, log)

	log.Debug("storefront session ready",
		zap.String("store", cfg.Store.Path),
		zap.String("base_url", cfg.Store.BaseURL),
	)

	return &app{log: log, store: store, catalog: catalog, checkout: checkout}, nil
}

// newRootCommand creates the root command for the storefront CLI.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Terminal storefront for the remote commerce API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newProductsCommand())
	cmd.AddCommand(newProductCommand())
	cmd.AddCommand(newCartCommand())
	cmd.AddCommand(newAddCommand())
	cmd.AddCommand(newUpdateCommand())
	cmd.AddCommand(newRemoveCommand())
	cmd.AddCommand(newClearCommand())
	cmd.AddCommand(newCouponCommand())
	cmd.AddCommand(newCheckoutCommand())

	return cmd
}

func newProductsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			if err := a.catalog.LoadProducts(cmd.Context()); err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), a.catalog.Products())
			return nil
		},
	}
}

func newProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product <product-id>",
		Short: "Show one product's detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			return a.catalog.OpenProduct(cmd.Context(), args[0])
		},
	}
}

func newCartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the shopping cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			if err := a.store.Refresh(cmd.Context()); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.store.Cart())
			return nil
		},
	}
}

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id> [qty]",
		Short: "Add a product to the cart",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty := 1
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("qty must be a number, got %q", args[1])
				}
				qty = n
			}

			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			if err := a.store.AddItem(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.store.Cart())
			return nil
		},
	}
}

func newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <cart-item-id> <qty>",
		Short: "Change a cart line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("qty must be a number, got %q", args[1])
			}

			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			// The update call needs the line's product id; read it from the
			// authoritative snapshot.
			if err := a.store.Refresh(cmd.Context()); err != nil {
				return err
			}
			cart := a.store.Cart()
			item := cart.Item(args[0])
			if item == nil {
				return fmt.Errorf("cart item %q not found", args[0])
			}

			if err := a.store.UpdateItem(cmd.Context(), item.ID, item.ProductID, qty); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.store.Cart())
			return nil
		},
	}
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <cart-item-id>",
		Short: "Remove one cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			if err := a.store.RemoveItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.store.Cart())
			return nil
		},
	}
}

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the shopping cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			return a.store.Clear(cmd.Context())
		},
	}
}

func newCouponCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coupon <code>",
		Short: "Apply a coupon code to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			a.checkout.SetCouponCode(args[0])
			if err := a.checkout.ApplyCoupon(cmd.Context()); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), a.store.Cart())
			return nil
		},
	}
}

func newCheckoutCommand() *cobra.Command {
	var name, email, tel, address, message string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync(a.log) }()

			form := a.checkout.Form()
			form.User.Name = name
			form.User.Email = email
			form.User.Tel = tel
			form.User.Address = address
			form.Message = message

			return a.checkout.Submit(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "buyer name")
	cmd.Flags().StringVar(&email, "email", "", "buyer email")
	cmd.Flags().StringVar(&tel, "tel", "", "buyer mobile number")
	cmd.Flags().StringVar(&address, "address", "", "delivery address")
	cmd.Flags().StringVar(&message, "message", "", "note to the store")

	return cmd
}

// printProducts renders the catalog as a table.
func printProducts(w io.Writer, products []shop.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tUNIT")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, p.Price, p.Unit)
	}
	_ = tw.Flush()
}

// printCart renders the cart snapshot with its server-computed totals.
func printCart(w io.Writer, cart shop.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(w, "cart is empty")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tPRODUCT\tQTY\tTOTAL")
	for _, item := range cart.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", item.ID, item.Product.Title, item.Qty, item.FinalTotal)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "total: %s\n", cart.Total)
	if discount := cart.Discount(); discount.IsPositive() {
		fmt.Fprintf(w, "discount: -%s\n", discount)
		fmt.Fprintf(w, "final total: %s\n", cart.FinalTotal)
	}
}
