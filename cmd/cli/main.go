package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vixus/vixus/internal/infrastructure/config"
	"github.com/vixus/vixus/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vixus-cli",
		Short: "Vixus CLI tool",
		Long:  `A command line interface for interacting with the Vixus API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Vixus API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}

	var (
		year   int
		month  int
		hidden bool
	)

	monthCmd := &cobra.Command{
		Use:   "month",
		Short: "Print the monthly report",
		Run: func(cmd *cobra.Command, args []string) {
			fetchMonthlyReport(year, month, hidden)
		},
	}
	now := time.Now()
	monthCmd.Flags().IntVar(&year, "year", now.Year(), "Report year")
	monthCmd.Flags().IntVar(&month, "month", int(now.Month()), "Report month (1-12)")
	monthCmd.Flags().BoolVar(&hidden, "hidden", false, "Mask currency values")

	reportCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(reportCmd)

	// Accounts overview
	var accountsHidden bool
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Print the account totals overview",
		Run: func(cmd *cobra.Command, args []string) {
			fetchAccountOverview(accountsHidden)
		},
	}
	accountsCmd.Flags().BoolVar(&accountsHidden, "hidden", false, "Mask currency values")
	rootCmd.AddCommand(accountsCmd)

	// Migration commands
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	}

	migrateDownCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func fetchMonthlyReport(year, month int, hidden bool) {
	q := url.Values{}
	q.Set("year", fmt.Sprintf("%d", year))
	q.Set("month", fmt.Sprintf("%d", month))
	if hidden {
		q.Set("hidden", "true")
	}

	body := getJSON("/api/v1/reports/monthly?" + q.Encode())

	var report struct {
		Year    int `json:"year"`
		Month   int `json:"month"`
		Buckets []struct {
			Label          string `json:"label"`
			IncomeDisplay  string `json:"income_display"`
			ExpenseDisplay string `json:"expense_display"`
			BalanceDisplay string `json:"balance_display"`
		} `json:"buckets"`
		Totals struct {
			TotalIncomeDisplay  string `json:"total_income_display"`
			TotalExpenseDisplay string `json:"total_expense_display"`
			NetBalanceDisplay   string `json:"net_balance_display"`
		} `json:"totals"`
		SkippedEntries int `json:"skipped_entries"`
	}
	if err := json.Unmarshal(body, &report); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Report %04d-%02d\n", report.Year, report.Month)
	for _, b := range report.Buckets {
		fmt.Printf("  %-10s income=%-14s expense=%-14s balance=%s\n",
			b.Label, b.IncomeDisplay, b.ExpenseDisplay, b.BalanceDisplay)
	}
	fmt.Printf("Income:  %s\n", report.Totals.TotalIncomeDisplay)
	fmt.Printf("Expense: %s\n", report.Totals.TotalExpenseDisplay)
	fmt.Printf("Net:     %s\n", report.Totals.NetBalanceDisplay)
	if report.SkippedEntries > 0 {
		fmt.Printf("Skipped malformed entries: %d\n", report.SkippedEntries)
	}
}

func fetchAccountOverview(hidden bool) {
	path := "/api/v1/reports/accounts"
	if hidden {
		path += "?hidden=true"
	}

	body := getJSON(path)

	var overview struct {
		CheckingDisplay    string `json:"total_checking_display"`
		InvestmentsDisplay string `json:"total_investments_display"`
		CreditCardsDisplay string `json:"total_credit_cards_display"`
		GrandTotalDisplay  string `json:"grand_total_display"`
	}
	if err := json.Unmarshal(body, &overview); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Checking:     %s\n", overview.CheckingDisplay)
	fmt.Printf("Investments:  %s\n", overview.InvestmentsDisplay)
	fmt.Printf("Credit cards: %s\n", overview.CreditCardsDisplay)
	fmt.Printf("Grand total:  %s\n", overview.GrandTotalDisplay)
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
