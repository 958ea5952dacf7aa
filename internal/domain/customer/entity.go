// internal/domain/customer/entity.go
package customer

// Customer is one row of the customer table.
type Customer struct {
	Sno          int64   `json:"sno" db:"sno"`
	CustomerName string  `json:"customer_name" db:"customer_name"`
	Age          *int32  `json:"age" db:"age"`
	Phone        *string `json:"phone" db:"phone"`
	Location     string  `json:"location" db:"location"`

	// Rendered by Postgres as text: created_date is YYYY-MM-DD, created_time is HH:MM:SS[.ffffff].
	CreatedDate string `json:"created_date" db:"created_date"`
	CreatedTime string `json:"created_time" db:"created_time"`
}

// SortField names a column the list view can order by.
type SortField string

const (
	SortByCreatedDate SortField = "created_date"
	SortByCreatedTime SortField = "created_time"
)

// SortFields lists the selectable sort fields in display order.
var SortFields = []SortField{SortByCreatedDate, SortByCreatedTime}

// IsValid reports whether f is one of the selectable sort fields.
func (f SortField) IsValid() bool {
	switch f {
	case SortByCreatedDate, SortByCreatedTime:
		return true
	}
	return false
}

// Label is the human readable name shown in sort controls.
func (f SortField) Label() string {
	switch f {
	case SortByCreatedDate:
		return "Date"
	case SortByCreatedTime:
		return "Time"
	}
	return string(f)
}

// Value returns the raw value of the given sort field.
func (c *Customer) Value(f SortField) string {
	switch f {
	case SortByCreatedDate:
		return c.CreatedDate
	case SortByCreatedTime:
		return c.CreatedTime
	}
	return ""
}
