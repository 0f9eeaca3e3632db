package partner

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, ownerID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(ownerID, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, ownerID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForOwner(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, ownerID uuid.UUID, filter CustomerListFilter) (*shared.Paginated[CustomerResponse], error) {
	repoFilter := filter.ToSharedFilter()

	customers, err := s.customerRepo.FindAllForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.customerRepo.CountForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}

	result := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// Update updates a customer's contact information
func (s *CustomerService) Update(ctx context.Context, ownerID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForOwner(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	if req.Name != nil {
		name = *req.Name
	}
	phone := customer.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := customer.Email
	if req.Email != nil {
		email = *req.Email
	}
	address := customer.Address
	if req.Address != nil {
		address = *req.Address
	}
	if err := customer.Update(name, phone, email, address); err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch partner.CustomerStatus(*req.Status) {
		case partner.CustomerStatusActive:
			customer.Activate()
		case partner.CustomerStatusInactive:
			customer.Deactivate()
		default:
			return nil, shared.NewValidationError("Status must be active or inactive")
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer. Customers with outstanding debt cannot be
// deleted since that would erase the record of what they owe.
func (s *CustomerService) Delete(ctx context.Context, ownerID, customerID uuid.UUID) error {
	customer, err := s.customerRepo.FindByIDForOwner(ctx, ownerID, customerID)
	if err != nil {
		return err
	}
	if customer.HasDebt() {
		return shared.NewDomainError("HAS_DEBT", "Customer with outstanding debt cannot be deleted")
	}
	return s.customerRepo.DeleteForOwner(ctx, ownerID, customerID)
}
