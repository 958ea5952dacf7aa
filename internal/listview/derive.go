package listview

import (
	"slices"
	"strings"

	"customer-datatable/internal/domain/customer"
)

// Filter keeps the records whose customer_name or location contains term,
// ignoring case. An empty term keeps everything. The input is not modified.
func Filter(records []customer.Customer, term string) []customer.Customer {
	needle := strings.ToLower(term)

	out := make([]customer.Customer, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.CustomerName), needle) ||
			strings.Contains(strings.ToLower(r.Location), needle) {
			out = append(out, r)
		}
	}
	return out
}

type keyed struct {
	rec customer.Customer
	key sortKey
}

// Sort returns a copy of records stably ordered by field, read as a date or
// time of day. Values that cannot be parsed go last in either order.
func Sort(records []customer.Customer, field customer.SortField, order SortOrder) []customer.Customer {
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{rec: r, key: parseSortKey(r.Value(field))}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return compareKeys(a.key, b.key, order)
	})

	out := make([]customer.Customer, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

func compareKeys(a, b sortKey, order SortOrder) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return 1
	case !b.ok:
		return -1
	}

	c := a.t.Compare(b.t)
	if order == Descending {
		return -c
	}
	return c
}

// Row is one displayed record with its 1-based position in the derived view.
type Row struct {
	Number   int
	Customer customer.Customer
}

// Page is one window of the derived view plus the paging state around it.
type Page struct {
	Rows        []Row
	Number      int
	Size        int
	TotalItems  int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// Window returns records[(page-1)*size : page*size], clamped to the slice.
// Pages before the first or past the end are empty.
func Window(records []customer.Customer, page, size int) []customer.Customer {
	if page < 1 || size < 1 {
		return []customer.Customer{}
	}

	from := (page - 1) * size
	if from >= len(records) {
		return []customer.Customer{}
	}
	to := min(from+size, len(records))

	return records[from:to:to]
}

// Paginate builds the Page for records at the given page number.
func Paginate(records []customer.Customer, page, size int) Page {
	window := Window(records, page, size)

	rows := make([]Row, len(window))
	first := (page - 1) * size
	for i, r := range window {
		rows[i] = Row{Number: first + i + 1, Customer: r}
	}

	totalPages := 0
	if size > 0 {
		totalPages = (len(records) + size - 1) / size
	}

	return Page{
		Rows:        rows,
		Number:      page,
		Size:        size,
		TotalItems:  len(records),
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page*size < len(records),
	}
}
