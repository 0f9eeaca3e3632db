package catalog

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/catalog"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles catalog business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create creates a new product in the owner's catalog
func (s *ProductService) Create(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(ownerID, req.Name, req.Category, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, ownerID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForOwner(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, ownerID uuid.UUID, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	repoFilter := filter.ToSharedFilter()

	products, err := s.productRepo.FindAllForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.CountForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}

	result := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// Update updates a product's catalog information
func (s *ProductService) Update(ctx context.Context, ownerID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForOwner(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	category := product.Category
	if req.Category != nil {
		category = *req.Category
	}
	price := product.Price
	if req.Price != nil {
		price = *req.Price
	}
	if err := product.Update(name, category, price); err != nil {
		return nil, err
	}

	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		switch catalog.ProductStatus(*req.Status) {
		case catalog.ProductStatusActive:
			product.Activate()
		case catalog.ProductStatusInactive:
			product.Deactivate()
		default:
			return nil, shared.NewValidationError("Status must be active or inactive")
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Restock adds received stock to a product
func (s *ProductService) Restock(ctx context.Context, ownerID, productID uuid.UUID, req RestockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForOwner(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Restock(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, ownerID, productID uuid.UUID) error {
	return s.productRepo.DeleteForOwner(ctx, ownerID, productID)
}
