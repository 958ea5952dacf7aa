package listview

import (
	"testing"

	"customer-datatable/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.NotNil(t, s.Records)
	assert.Empty(t, s.Records)
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, customer.SortByCreatedDate, s.SortBy)
	assert.Equal(t, Ascending, s.Order)
	assert.Empty(t, s.Err)
}

func TestState_SearchResetsPage(t *testing.T) {
	s := NewState().Loaded(makeCustomers(45)).NextPage().NextPage()
	require.Equal(t, 3, s.CurrentPage)

	s = s.Search("Customer 1")
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, "Customer 1", s.SearchTerm)

	// Clearing the term also resets.
	s = s.NextPage()
	s = s.Search("")
	assert.Equal(t, 1, s.CurrentPage)
}

func TestState_SortChangesKeepPage(t *testing.T) {
	s := NewState().Loaded(makeCustomers(45)).NextPage()

	s = s.SetSortField(customer.SortByCreatedTime)
	assert.Equal(t, customer.SortByCreatedTime, s.SortBy)
	assert.Equal(t, 2, s.CurrentPage)

	s = s.ToggleSortOrder()
	assert.Equal(t, Descending, s.Order)
	assert.Equal(t, 2, s.CurrentPage)

	s = s.ToggleSortOrder()
	assert.Equal(t, Ascending, s.Order)
}

func TestState_SetSortFieldIgnoresUnknown(t *testing.T) {
	s := NewState().SetSortField("customer_name")
	assert.Equal(t, customer.SortByCreatedDate, s.SortBy)
}

func TestState_CycleSortField(t *testing.T) {
	s := NewState()

	s = s.CycleSortField()
	assert.Equal(t, customer.SortByCreatedTime, s.SortBy)
	s = s.CycleSortField()
	assert.Equal(t, customer.SortByCreatedDate, s.SortBy)
}

func TestState_PagingScenario(t *testing.T) {
	s := NewState().Loaded(makeCustomers(25))

	page := s.Page()
	require.Len(t, page.Rows, 20)
	assert.Equal(t, int64(1), page.Rows[0].Customer.Sno)
	assert.Equal(t, int64(20), page.Rows[19].Customer.Sno)
	assert.False(t, s.HasPrevious())
	assert.True(t, s.HasNext())

	s = s.NextPage()
	assert.Equal(t, 2, s.CurrentPage)
	page = s.Page()
	require.Len(t, page.Rows, 5)
	assert.Equal(t, int64(21), page.Rows[0].Customer.Sno)
	assert.Equal(t, int64(25), page.Rows[4].Customer.Sno)
	assert.False(t, s.HasNext())

	// Next is a no-op once the window covers the rest.
	assert.Equal(t, 2, s.NextPage().CurrentPage)
}

func TestState_PrevPageNoopOnFirst(t *testing.T) {
	s := NewState().Loaded(makeCustomers(5))
	assert.Equal(t, 1, s.PrevPage().CurrentPage)
}

func TestState_NextPageNoopWhenEmpty(t *testing.T) {
	assert.Equal(t, 1, NewState().NextPage().CurrentPage)
}

func TestState_PageAppliesSortBeforeSlicing(t *testing.T) {
	records := makeCustomers(25)
	s := NewState().Loaded(records).ToggleSortOrder()

	page := s.Page()
	require.Len(t, page.Rows, 20)
	assert.Equal(t, int64(25), page.Rows[0].Customer.Sno)
	assert.Equal(t, 1, page.Rows[0].Number)
}

func TestState_SearchFiltersPage(t *testing.T) {
	s := NewState().Loaded(sampleCustomers()).Search("al")

	page := s.Page()
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Alice", page.Rows[0].Customer.CustomerName)
	assert.Equal(t, 1, page.TotalItems)
}

func TestState_LoadedSnapshotIsCopied(t *testing.T) {
	records := sampleCustomers()
	s := NewState().Loading().Loaded(records)

	records[0].CustomerName = "Mallory"
	assert.Equal(t, "Alice", s.Records[0].CustomerName)
	assert.Equal(t, PhaseLoaded, s.Phase)
}

func TestState_FailedKeepsSnapshot(t *testing.T) {
	s := NewState().Loading().Failed()

	assert.Equal(t, PhaseErrored, s.Phase)
	assert.Equal(t, "Error fetching data. Please try again.", s.Err)
	assert.Empty(t, s.Records)
	assert.Empty(t, s.Page().Rows)
}

func TestState_TransitionsDoNotMutateReceiver(t *testing.T) {
	s := NewState().Loaded(makeCustomers(30))

	_ = s.Search("x")
	_ = s.NextPage()
	_ = s.ToggleSortOrder()

	assert.Equal(t, 1, s.CurrentPage)
	assert.Empty(t, s.SearchTerm)
	assert.Equal(t, Ascending, s.Order)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "loaded", PhaseLoaded.String())
	assert.Equal(t, "errored", PhaseErrored.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
