package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"customer-datatable/internal/domain/customer"
	"customer-datatable/internal/listview"
)

type listOptions struct {
	search string
	sortBy string
	order  string
	page   int
}

func newListCmd(root *rootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.search, "search", "", "filter by customer name or location (case-insensitive)")
	cmd.Flags().StringVar(&opts.sortBy, "sort", string(customer.SortByCreatedDate), "sort field: created_date or created_time")
	cmd.Flags().StringVar(&opts.order, "order", string(listview.Ascending), "sort order: asc or desc")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number to print")

	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, opts *listOptions) error {
	field := customer.SortField(opts.sortBy)
	if !field.IsValid() {
		return fmt.Errorf("invalid sort field %q: must be created_date or created_time", opts.sortBy)
	}
	order := listview.SortOrder(opts.order)
	if order != listview.Ascending && order != listview.Descending {
		return fmt.Errorf("invalid order %q: must be asc or desc", opts.order)
	}
	if opts.page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", opts.page)
	}

	view := listview.NewView(cmd.Context(), root.client(), root.logger)
	defer view.Close()

	if err := view.Load(); err != nil {
		cmd.PrintErrln(listview.FetchErrorMessage)
		return err
	}

	view.Search(opts.search)
	view.SetSortField(field)
	if order == listview.Descending {
		view.ToggleSortOrder()
	}
	for i := 1; i < opts.page; i++ {
		before := view.State().CurrentPage
		if view.NextPage().CurrentPage == before {
			break
		}
	}

	renderPage(cmd.OutOrStdout(), view.Page())
	return nil
}

func renderPage(w io.Writer, page listview.Page) {
	if len(page.Rows) == 0 {
		fmt.Fprintln(w, "No customers found.")
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("S.No", "Customer Name", "Age", "Phone", "Location", "Created At (Date)", "Created At (Time)")
		for _, r := range page.Rows {
			c := r.Customer
			t.Row(
				strconv.Itoa(r.Number),
				c.CustomerName,
				intOrEmpty(c.Age),
				stringOrEmpty(c.Phone),
				c.Location,
				c.CreatedDate,
				c.CreatedTime,
			)
		}
		fmt.Fprintln(w, t.String())
	}

	fmt.Fprintf(w, "Page %d of %d (%d records)\n", page.Number, max(page.TotalPages, 1), page.TotalItems)
}

func intOrEmpty(v *int32) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
