package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/service"
	"github.com/spf13/cobra"
)

type OrderQuerier interface {
	ActiveOrders(ctx context.Context) ([]service.OrderView, error)
	HistoryOrders(ctx context.Context) ([]service.OrderView, error)
}

type TimeoutMarker interface {
	MarkTimeout(ctx context.Context, id string) error
}

type BalanceGetter interface {
	Balance(ctx context.Context) (string, error)
}

type Deps struct {
	Query   OrderQuerier
	Orders  TimeoutMarker
	Balance BalanceGetter
}

// NewRootCmd собирает команды ordersctl. deps вызывается один раз перед
// выполнением команды, чтобы --help работал без конфигурации.
func NewRootCmd(deps func(ctx context.Context) (Deps, error)) *cobra.Command {
	var d Deps

	root := &cobra.Command{
		Use:   "ordersctl",
		Short: "Управление заказами номеров из командной строки",
		Long: `ordersctl читает ту же конфигурацию (.env и переменные окружения), что и сервер.
Файл заказов блокируется открывшим его процессом: пока сервер работает с файловым
хранилищем, ordersctl завершится ошибкой. Используйте API или хранилище sqlite/postgres.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			d, err = deps(cmd.Context())
			return err
		},
	}
	root.PersistentFlags().Bool("json", false, "Вывод в формате JSON")

	root.AddCommand(
		&cobra.Command{
			Use:   "orders",
			Short: "Активные заказы (WAITING, COMPLETED)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				views, err := d.Query.ActiveOrders(cmd.Context())
				if err != nil {
					return err
				}
				return printOrders(cmd, views)
			},
		},
		&cobra.Command{
			Use:   "history",
			Short: "История заказов",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				views, err := d.Query.HistoryOrders(cmd.Context())
				if err != nil {
					return err
				}
				return printOrders(cmd, views)
			},
		},
		&cobra.Command{
			Use:   "balance",
			Short: "Баланс аккаунта у провайдера",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				balance, err := d.Balance.Balance(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to get balance: %w", err)
				}
				if jsonOutput(cmd) {
					return writeJSON(cmd.OutOrStdout(), map[string]string{"balance": balance})
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), balance)
				return err
			},
		},
		&cobra.Command{
			Use:   "timeout <order_id>",
			Short: "Отметить заказ как просроченный",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := d.Orders.MarkTimeout(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to mark order %s: %w", args[0], err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "order %s marked as TIMEOUT\n", args[0])
				return err
			},
		},
	)

	return root
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type orderJSON struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Service   string    `json:"service"`
	Country   string    `json:"country"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	SMS       string    `json:"sms"`
}

func printOrders(cmd *cobra.Command, views []service.OrderView) error {
	out := cmd.OutOrStdout()

	if jsonOutput(cmd) {
		orders := make([]orderJSON, 0, len(views))
		for _, v := range views {
			orders = append(orders, orderJSON{
				ID:        v.ID,
				Number:    v.Number,
				Service:   v.Service,
				Country:   v.Country,
				Status:    string(v.Status),
				CreatedAt: v.CreatedAt,
				SMS:       v.SMS,
			})
		}
		return writeJSON(out, orders)
	}

	cols := []string{"ID", "Number", "Service", "Country", "Status", "Created", "SMS"}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(cols, "\t"))
	for _, v := range views {
		fmt.Fprintln(w, strings.Join([]string{
			v.ID,
			v.NumberFormatted,
			v.ServiceName,
			v.CountryName,
			string(v.Status),
			v.CreatedAt.Local().Format(time.DateTime),
			v.SMS,
		}, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d order(s)\n", len(views))
	return err
}
