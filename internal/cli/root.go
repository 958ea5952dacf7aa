// Package cli implements the customer-viewer command line.
package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"customer-datatable/internal/client"
	"customer-datatable/internal/listview"
	"customer-datatable/internal/tui"
)

const (
	defaultAPIURL  = "http://localhost:5000"
	defaultTimeout = 10 * time.Second

	apiURLEnv = "CUSTOMERS_API_URL"
)

type rootOptions struct {
	url     string
	logFile string
	timeout time.Duration

	logger *zap.Logger
}

// NewRootCmd creates the customer-viewer command.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for tests.
func NewRootCmdWithEnv(lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{}

	defaultURL := defaultAPIURL
	if v, ok := lookupEnv(apiURLEnv); ok && v != "" {
		defaultURL = v
	}

	cmd := &cobra.Command{
		Use:           "customer-viewer",
		Short:         "Browse customer records",
		Long:          "customer-viewer fetches the customer table once and lets you search, sort and page through it.",
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.logFile)
			if err != nil {
				return err
			}
			opts.logger = logger
			opts.logger.Debug("command started", zap.String("command", cmd.Name()), zap.String("url", opts.url))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.url, "url", defaultURL, "base URL of the customer API (env "+apiURLEnv+")")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: no logging)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "HTTP request timeout")

	cmd.AddCommand(newListCmd(opts), newSubmitCmd(opts))

	return cmd
}

const rootCmdExample = `  # Open the interactive table
  customer-viewer --url http://localhost:5000

  # Print the second page of customers in Nairobi, newest first
  customer-viewer list --search nairobi --order desc --page 2

  # Submit a record and print the echo
  customer-viewer submit --name "Jane Doe" --age 31 --location Nairobi`

func (o *rootOptions) client() *client.Client {
	return client.New(o.url, client.WithTimeout(o.timeout))
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	view := listview.NewView(cmd.Context(), opts.client(), opts.logger)
	defer view.Close()

	p := tea.NewProgram(
		tui.NewModel(view),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}
