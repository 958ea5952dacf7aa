// internal/handlers/customer/customer.go
package customer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"customer-datatable/internal/domain/customer"
	xerrors "customer-datatable/internal/pkg/errors"
	"customer-datatable/internal/pkg/response"
	service "customer-datatable/internal/service/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// ListCustomers returns the whole customer table as a bare JSON array.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		h.logger.Error("error fetching customer data", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, customers)
}

// CreateCustomer echoes the submitted record back with 201. Nothing is stored.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Error("error reading request body", zap.Error(err))
		response.FromError(c, err)
		return
	}

	req, err := decodeCreateRequest(raw)
	if err != nil {
		h.logger.Warn("malformed customer body", zap.Error(err))
		response.FromError(c, err)
		return
	}

	result, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("error creating customer", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, result)
}

// decodeCreateRequest accepts an empty body, a JSON object or a JSON array.
// Only object fields are read; an empty body or an array yields an empty request.
// Any other top-level value (null, numbers, strings, booleans) is rejected.
func decodeCreateRequest(raw []byte) (*customer.CreateCustomerRequest, error) {
	req := &customer.CreateCustomerRequest{}

	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return req, nil
	}

	switch body[0] {
	case '{':
		if err := json.Unmarshal(body, req); err != nil {
			return nil, fmt.Errorf("%w: %v", xerrors.ErrBadRequest, err)
		}
	case '[':
		if !json.Valid(body) {
			return nil, fmt.Errorf("%w: invalid JSON array", xerrors.ErrBadRequest)
		}
	default:
		return nil, fmt.Errorf("%w: body must be a JSON object or array", xerrors.ErrBadRequest)
	}

	return req, nil
}
