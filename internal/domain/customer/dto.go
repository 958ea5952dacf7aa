// internal/domain/customer/dto.go
package customer

import "encoding/json"

// CreateCustomerRequest is the body of POST /api/customers.
// Fields are kept raw so the echo returns exactly what the caller sent;
// a field that was not sent stays empty and is left out of the echo.
type CreateCustomerRequest struct {
	CustomerName json.RawMessage `json:"customer_name,omitempty"`
	Age          json.RawMessage `json:"age,omitempty"`
	Phone        json.RawMessage `json:"phone,omitempty"`
	Location     json.RawMessage `json:"location,omitempty"`
	CreatedDate  json.RawMessage `json:"created_date,omitempty"`
	CreatedTime  json.RawMessage `json:"created_time,omitempty"`
}

// CreateCustomerData is the record echoed back by POST /api/customers.
type CreateCustomerData struct {
	CustomerName json.RawMessage `json:"customer_name,omitempty"`
	Age          json.RawMessage `json:"age,omitempty"`
	Phone        json.RawMessage `json:"phone,omitempty"`
	Location     json.RawMessage `json:"location,omitempty"`
	CreatedDate  json.RawMessage `json:"created_date,omitempty"`
	CreatedTime  json.RawMessage `json:"created_time,omitempty"`
}

// CreateCustomerResponse mirrors {"status": "success", "data": {...}}.
type CreateCustomerResponse struct {
	Status string             `json:"status"`
	Data   CreateCustomerData `json:"data"`
}
