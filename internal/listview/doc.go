// Package listview holds the list view engine for customer records.
//
// A View fetches the whole customer table once and keeps it as an immutable
// snapshot. Everything the user does afterwards (typing a search term,
// choosing the sort field, flipping the sort order, paging) is a pure
// transition on State; the visible page is derived on demand as
//
//	snapshot -> Filter(search term) -> Sort(field, order) -> Window(page, PageSize)
//
// No further network calls are made after the initial load.
package listview
