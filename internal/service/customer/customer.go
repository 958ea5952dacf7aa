// internal/service/customer/customer.go
package customer

import (
	"context"

	"customer-datatable/internal/domain/customer"
	xerrors "customer-datatable/internal/pkg/errors"
	"customer-datatable/internal/pkg/response"

	"go.uber.org/zap"
)

// Repository is the storage the service reads the snapshot from.
type Repository interface {
	ListAll(ctx context.Context) ([]customer.Customer, error)
}

type CustomerService struct {
	customerRepo Repository
	logger       *zap.Logger
}

func NewCustomerService(customerRepo Repository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListCustomers returns the full, unfiltered customer table.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	customers, err := s.customerRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("error fetching customer data", zap.Error(err))
		return nil, xerrors.Wrap(err, "failed to list customers")
	}

	if customers == nil {
		customers = []customer.Customer{}
	}

	s.logger.Debug("customers listed", zap.Int("count", len(customers)))

	return customers, nil
}

// CreateCustomer builds the record described by req and returns it.
// Nothing is written to storage.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.CreateCustomerResponse, error) {
	if req == nil {
		req = &customer.CreateCustomerRequest{}
	}

	result := &customer.CreateCustomerResponse{
		Status: response.StatusSuccess,
		Data: customer.CreateCustomerData{
			CustomerName: req.CustomerName,
			Age:          req.Age,
			Phone:        req.Phone,
			Location:     req.Location,
			CreatedDate:  req.CreatedDate,
			CreatedTime:  req.CreatedTime,
		},
	}

	s.logger.Info("customer submission echoed",
		zap.ByteString("customer_name", req.CustomerName),
		zap.ByteString("location", req.Location),
	)

	return result, nil
}
