package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"customer-datatable/internal/domain/customer"
)

type submitOptions struct {
	name     string
	age      int
	phone    string
	location string
	date     string
	time     string
}

func newSubmitCmd(root *rootOptions) *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a customer record and print the echoed result",
		Long:  "Submit posts a record to the API. The API echoes the record back; nothing is stored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := opts.request(cmd)
			if err != nil {
				return err
			}

			resp, err := root.client().Create(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("submit failed: %w", err)
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "customer name")
	cmd.Flags().IntVar(&opts.age, "age", 0, "customer age")
	cmd.Flags().StringVar(&opts.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&opts.location, "location", "", "location")
	cmd.Flags().StringVar(&opts.date, "date", "", "created date, e.g. 2024-01-15")
	cmd.Flags().StringVar(&opts.time, "time", "", "created time, e.g. 10:30:00")

	return cmd
}

// request includes only the flags that were set, so unset fields are absent from the body.
func (o *submitOptions) request(cmd *cobra.Command) (*customer.CreateCustomerRequest, error) {
	req := &customer.CreateCustomerRequest{}

	fields := []struct {
		flag  string
		value any
		dst   *json.RawMessage
	}{
		{"name", o.name, &req.CustomerName},
		{"age", o.age, &req.Age},
		{"phone", o.phone, &req.Phone},
		{"location", o.location, &req.Location},
		{"date", o.date, &req.CreatedDate},
		{"time", o.time, &req.CreatedTime},
	}

	for _, f := range fields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		raw, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", f.flag, err)
		}
		*f.dst = raw
	}

	return req, nil
}
