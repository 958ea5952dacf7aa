package listview

import (
	"slices"

	"customer-datatable/internal/domain/customer"
)

// PageSize is the fixed number of rows per page.
const PageSize = 20

// FetchErrorMessage is shown when the initial load fails.
const FetchErrorMessage = "Error fetching data. Please try again."

// Phase is the lifecycle stage of a view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// SortOrder is the direction of the chronological sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Label is the text shown on the order toggle.
func (o SortOrder) Label() string {
	if o == Descending {
		return "Descending"
	}
	return "Ascending"
}

// State is everything the list view owns. Transitions return a new State and
// never modify Records in place.
type State struct {
	Phase   Phase
	Records []customer.Customer
	Err     string

	CurrentPage int
	SearchTerm  string
	SortBy      customer.SortField
	Order       SortOrder
}

// NewState returns the state of a freshly mounted view: empty snapshot,
// page 1, sorted ascending by created_date.
func NewState() State {
	return State{
		Phase:       PhaseIdle,
		Records:     []customer.Customer{},
		CurrentPage: 1,
		SortBy:      customer.SortByCreatedDate,
		Order:       Ascending,
	}
}

// Loading marks the fetch as in flight.
func (s State) Loading() State {
	s.Phase = PhaseLoading
	return s
}

// Loaded replaces the snapshot wholesale and clears any error.
func (s State) Loaded(records []customer.Customer) State {
	s.Phase = PhaseLoaded
	s.Records = slices.Clone(records)
	if s.Records == nil {
		s.Records = []customer.Customer{}
	}
	s.Err = ""
	return s
}

// Failed records the fetch failure. The snapshot is left as it was.
func (s State) Failed() State {
	s.Phase = PhaseErrored
	s.Err = FetchErrorMessage
	return s
}

// Search sets the search term and goes back to the first page.
func (s State) Search(term string) State {
	s.SearchTerm = term
	s.CurrentPage = 1
	return s
}

// SetSortField changes the sort field. Unknown fields are ignored.
func (s State) SetSortField(field customer.SortField) State {
	if !field.IsValid() {
		return s
	}
	s.SortBy = field
	return s
}

// CycleSortField moves to the next selectable sort field.
func (s State) CycleSortField() State {
	i := slices.Index(customer.SortFields, s.SortBy)
	return s.SetSortField(customer.SortFields[(i+1)%len(customer.SortFields)])
}

// ToggleSortOrder flips between ascending and descending.
func (s State) ToggleSortOrder() State {
	if s.Order == Ascending {
		s.Order = Descending
	} else {
		s.Order = Ascending
	}
	return s
}

// NextPage advances one page while the current window ends before the
// last filtered record. Otherwise the state is returned unchanged.
func (s State) NextPage() State {
	if s.HasNext() {
		s.CurrentPage++
	}
	return s
}

// PrevPage goes back one page unless already on the first.
func (s State) PrevPage() State {
	if s.HasPrevious() {
		s.CurrentPage--
	}
	return s
}

// HasPrevious reports whether PrevPage would move.
func (s State) HasPrevious() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether NextPage would move.
func (s State) HasNext() bool {
	return s.CurrentPage*PageSize < len(s.Filtered())
}

// Filtered is the snapshot narrowed by the search term, in snapshot order.
func (s State) Filtered() []customer.Customer {
	return Filter(s.Records, s.SearchTerm)
}

// Sorted is the filtered view ordered by the active sort field and order.
func (s State) Sorted() []customer.Customer {
	return Sort(s.Filtered(), s.SortBy, s.Order)
}

// Page derives the rows to display for the current page.
func (s State) Page() Page {
	return Paginate(s.Sorted(), s.CurrentPage, PageSize)
}
