package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobank-cli",
		Short: "GoBank CLI tool",
		Long:  `A command line interface for the GoBank ATM API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBank API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("GOBANK_TOKEN"), "Session token (or GOBANK_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		loginCmd(),
		accountCmd(),
		depositCmd(),
		withdrawCmd(),
		transferCmd(),
		balanceCmd(),
		historyCmd(),
		changePINCmd(),
		receiptCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	var admin bool

	cmd := &cobra.Command{
		Use:   "login <id> <secret>",
		Short: "Log in as a customer (account number + PIN) or, with --admin, as an admin",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if admin {
				do(http.MethodPost, "/api/v1/auth/admin/login", map[string]any{
					"username": args[0],
					"password": args[1],
				})
				return
			}
			do(http.MethodPost, "/api/v1/auth/login", map[string]any{
				"account_number": args[0],
				"pin":            args[1],
			})
		},
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "Admin login")

	return cmd
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account lifecycle operations",
	}

	var name, pin, deposit string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodPost, "/api/v1/accounts", map[string]any{
				"name":            name,
				"pin":             pin,
				"initial_deposit": deposit,
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Holder name")
	createCmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN")
	createCmd.Flags().StringVar(&deposit, "deposit", "0", "Initial deposit")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts (admin session)",
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodGet, "/api/v1/admin/accounts/", nil)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <number>",
		Short: "Show one account with its log (admin session)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodGet, "/api/v1/admin/accounts/"+args[0], nil)
		},
	}

	unlockCmd := &cobra.Command{
		Use:   "unlock <number>",
		Short: "Unlock a locked account (admin session)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodPost, "/api/v1/admin/accounts/"+args[0]+"/unlock", nil)
		},
	}

	closeCmd := &cobra.Command{
		Use:   "close <number>",
		Short: "Close a zero-balance account (admin session)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodDelete, "/api/v1/admin/accounts/"+args[0], nil)
		},
	}

	cmd.AddCommand(createCmd, listCmd, showCmd, unlockCmd, closeCmd)
	return cmd
}

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit into the session account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodPost, "/api/v1/me/deposits", map[string]any{"amount": args[0]})
		},
	}
}

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw from the session account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodPost, "/api/v1/me/withdrawals", map[string]any{"amount": args[0]})
		},
	}
}

func transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <to-account> <amount>",
		Short: "Transfer from the session account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodPost, "/api/v1/me/transfers", map[string]any{
				"to_account": args[0],
				"amount":     args[1],
			})
		},
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the session account's balance",
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodGet, "/api/v1/me/balance", nil)
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the session account's transaction history",
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodGet, "/api/v1/me/transactions", nil)
		},
	}
}

func changePINCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-pin <current> <new>",
		Short: "Change the session account's PIN",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodPut, "/api/v1/me/pin", map[string]any{
				"current_pin": args[0],
				"new_pin":     args[1],
			})
		},
	}
}

func receiptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "receipt",
		Short: "Print a receipt for the last transaction",
		Run: func(cmd *cobra.Command, args []string) {
			do(http.MethodGet, "/api/v1/me/receipt", nil)
		},
	}
}

// do performs one API call and pretty-prints the JSON response. On a
// non-2xx status the body is still printed (it carries the failure
// message) and the process exits nonzero.
func do(method, path string, body map[string]any) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			fmt.Printf("Error encoding request: %v\n", err)
			os.Exit(1)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if json.Indent(&pretty, raw, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(raw))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		os.Exit(1)
	}
}
