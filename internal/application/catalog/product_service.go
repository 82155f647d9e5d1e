package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductRescorer recomputes the quality score of a product after its
// catalog data changes. The rating service implements it.
type ProductRescorer interface {
	RescoreProduct(ctx context.Context, productID uuid.UUID) (float64, error)
}

// ProductService handles product-related business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	categoryRepo   catalog.CategoryRepository
	attributeRepo  catalog.AttributeRepository
	valueRepo      catalog.ProductAttributeValueRepository
	imageRepo      catalog.ProductImageRepository
	seoRepo        catalog.ProductSEORepository
	eventPublisher shared.EventPublisher
	rescorer       ProductRescorer
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	attributeRepo catalog.AttributeRepository,
	valueRepo catalog.ProductAttributeValueRepository,
	imageRepo catalog.ProductImageRepository,
	seoRepo catalog.ProductSEORepository,
	eventPublisher shared.EventPublisher,
	rescorer ProductRescorer,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		attributeRepo:  attributeRepo,
		valueRepo:      valueRepo,
		imageRepo:      imageRepo,
		seoRepo:        seoRepo,
		eventPublisher: eventPublisher,
		rescorer:       rescorer,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	// Check if SKU already exists (if provided)
	if req.SKU != "" {
		_, err := s.productRepo.FindBySKU(ctx, req.SKU)
		if err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Name, req.SKU, catalog.ProductType(req.Type))
	if err != nil {
		return nil, err
	}

	// Set optional fields
	if req.Description != "" || req.ShortDescription != "" {
		if err := product.Update(req.Name, req.Description, req.ShortDescription); err != nil {
			return nil, err
		}
	}

	if req.RegularPrice != nil || req.SalePrice != nil {
		regular := decimal.Zero
		sale := decimal.Zero
		if req.RegularPrice != nil {
			regular = *req.RegularPrice
		}
		if req.SalePrice != nil {
			sale = *req.SalePrice
		}
		if err := product.SetPrices(regular, sale); err != nil {
			return nil, err
		}
	}

	if req.ManageStock || req.StockQuantity != nil || req.StockStatus != "" {
		status := product.StockStatus
		if req.StockStatus != "" {
			status = catalog.StockStatus(req.StockStatus)
		}
		if err := product.SetStock(req.ManageStock, req.StockQuantity, status); err != nil {
			return nil, err
		}
	}

	if req.Weight != nil || req.Length != nil || req.Width != nil || req.Height != nil {
		weight := decimal.Zero
		if req.Weight != nil {
			weight = *req.Weight
		}
		if err := product.SetShipping(weight, dimensionsFromRequest(req.Length, req.Width, req.Height)); err != nil {
			return nil, err
		}
	}

	if req.Metadata != "" {
		if err := product.SetMetadata(req.Metadata); err != nil {
			return nil, err
		}
	}

	if req.Status != "" {
		if err := product.SetStatus(catalog.ProductStatus(req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, product)
	s.rescore(ctx, product.ID)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves a product by SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetDetail retrieves a product together with its categories, attribute
// values, images and SEO record
func (s *ProductService) GetDetail(ctx context.Context, productID uuid.UUID) (*ProductDetailResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	values, err := s.valueRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetailResponse{
		Product:    ToProductResponse(product),
		Categories: ToCategoryResponses(categories),
		Attributes: ToProductAttributeResponses(values),
		Images:     ToImageResponses(images),
	}

	seo, err := s.seoRepo.FindByProduct(ctx, productID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	} else {
		seoResponse := ToSEOResponse(seo)
		detail.SEO = &seoResponse
	}

	return detail, nil
}

// List retrieves products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductListResponse, int64, error) {
	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	// Build domain filter
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.StockStatus != "" {
		domainFilter.Filters["stock_status"] = filter.StockStatus
	}
	if filter.SKU != "" {
		domainFilter.Filters["sku"] = filter.SKU
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Linked != nil {
		domainFilter.Filters["linked"] = *filter.Linked
	}
	if filter.MinScore != nil {
		domainFilter.Filters["min_score"] = *filter.MinScore
	}
	if filter.MaxScore != nil {
		domainFilter.Filters["max_score"] = *filter.MaxScore
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductListResponses(products), total, nil
}

// ListLowScoring retrieves the lowest scoring non-archived products
func (s *ProductService) ListLowScoring(ctx context.Context, limit int) ([]ProductListResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	products, err := s.productRepo.FindLowScoring(ctx, limit)
	if err != nil {
		return nil, err
	}

	return ToProductListResponses(products), nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil || req.ShortDescription != nil {
		name := product.Name
		description := product.Description
		shortDescription := product.ShortDescription
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if req.ShortDescription != nil {
			shortDescription = *req.ShortDescription
		}
		if err := product.Update(name, description, shortDescription); err != nil {
			return nil, err
		}
	}

	if req.SKU != nil && *req.SKU != product.SKU {
		if *req.SKU != "" {
			existing, err := s.productRepo.FindBySKU(ctx, *req.SKU)
			if err == nil && existing.ID != product.ID {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
			}
			if err != nil && !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
		}
		if err := product.UpdateSKU(*req.SKU); err != nil {
			return nil, err
		}
	}

	if req.Type != nil {
		if err := product.SetType(catalog.ProductType(*req.Type)); err != nil {
			return nil, err
		}
	}

	if req.RegularPrice != nil || req.SalePrice != nil {
		regular := product.RegularPrice
		sale := product.SalePrice
		if req.RegularPrice != nil {
			regular = *req.RegularPrice
		}
		if req.SalePrice != nil {
			sale = *req.SalePrice
		}
		if err := product.SetPrices(regular, sale); err != nil {
			return nil, err
		}
	}

	if req.ManageStock != nil || req.StockQuantity != nil || req.StockStatus != nil {
		manage := product.ManageStock
		quantity := product.StockQuantity
		status := product.StockStatus
		if req.ManageStock != nil {
			manage = *req.ManageStock
		}
		if req.StockQuantity != nil {
			quantity = req.StockQuantity
		}
		if req.StockStatus != nil {
			status = catalog.StockStatus(*req.StockStatus)
		}
		if err := product.SetStock(manage, quantity, status); err != nil {
			return nil, err
		}
	}

	if req.Weight != nil || req.Length != nil || req.Width != nil || req.Height != nil {
		weight := product.Weight
		dims := product.Dimensions
		if req.Weight != nil {
			weight = *req.Weight
		}
		if req.Length != nil {
			dims.Length = *req.Length
		}
		if req.Width != nil {
			dims.Width = *req.Width
		}
		if req.Height != nil {
			dims.Height = *req.Height
		}
		if err := product.SetShipping(weight, dims); err != nil {
			return nil, err
		}
	}

	if req.Metadata != nil {
		if err := product.SetMetadata(*req.Metadata); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := product.SetStatus(catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, product)
	s.rescore(ctx, product.ID)

	response := ToProductResponse(product)
	return &response, nil
}

// Publish moves a product into published status
func (s *ProductService) Publish(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, productID, catalog.ProductStatusPublished)
}

// Archive moves a product into archived status
func (s *ProductService) Archive(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, productID, catalog.ProductStatusArchived)
}

func (s *ProductService) changeStatus(ctx context.Context, productID uuid.UUID, status catalog.ProductStatus) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.SetStatus(status); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product and its owned child rows
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

// AssignCategories replaces the category links of a product
func (s *ProductService) AssignCategories(ctx context.Context, productID uuid.UUID, req AssignCategoriesRequest) ([]CategoryResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	// Validate categories and drop duplicates, preserving request order
	seen := make(map[uuid.UUID]bool, len(req.CategoryIDs))
	categoryIDs := make([]uuid.UUID, 0, len(req.CategoryIDs))
	for _, categoryID := range req.CategoryIDs {
		if seen[categoryID] {
			continue
		}
		seen[categoryID] = true

		if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found: "+categoryID.String())
			}
			return nil, err
		}
		categoryIDs = append(categoryIDs, categoryID)
	}

	if err := s.categoryRepo.ReplaceProductLinks(ctx, productID, categoryIDs); err != nil {
		return nil, err
	}

	s.rescore(ctx, productID)

	categories, err := s.categoryRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponses(categories), nil
}

// AssignAttributes replaces the attribute values of a product
func (s *ProductService) AssignAttributes(ctx context.Context, productID uuid.UUID, req AssignAttributesRequest) ([]ProductAttributeResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(req.Attributes))
	values := make([]catalog.ProductAttributeValue, 0, len(req.Attributes))
	for _, assignment := range req.Attributes {
		if seen[assignment.AttributeID] {
			return nil, shared.NewDomainError("DUPLICATE_ATTRIBUTE", "Attribute assigned more than once: "+assignment.AttributeID.String())
		}
		seen[assignment.AttributeID] = true

		attribute, err := s.attributeRepo.FindByID(ctx, assignment.AttributeID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_ATTRIBUTE", "Attribute not found: "+assignment.AttributeID.String())
			}
			return nil, err
		}

		// Select attributes only accept values from their vocabulary
		if attribute.Type == catalog.AttributeTypeSelect && !attribute.HasValue(assignment.Value) {
			return nil, shared.NewDomainError("INVALID_VALUE", "Value is not in the attribute vocabulary: "+assignment.Value)
		}

		visible := attribute.Visible
		if assignment.Visible != nil {
			visible = *assignment.Visible
		}
		usedForVariation := attribute.UsedForVariation
		if assignment.UsedForVariation != nil {
			usedForVariation = *assignment.UsedForVariation
		}

		value, err := catalog.NewProductAttributeValue(productID, attribute.ID, assignment.Value, visible, usedForVariation)
		if err != nil {
			return nil, err
		}
		values = append(values, *value)
	}

	if err := s.valueRepo.ReplaceForProduct(ctx, productID, values); err != nil {
		return nil, err
	}

	s.rescore(ctx, productID)

	return ToProductAttributeResponses(values), nil
}

// ReplaceImages replaces the image gallery of a product. When no image
// is marked featured the first one becomes the featured image, matching
// how the remote store treats galleries.
func (s *ProductService) ReplaceImages(ctx context.Context, productID uuid.UUID, req ReplaceImagesRequest) ([]ImageResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	featured := 0
	for _, img := range req.Images {
		if img.IsFeatured {
			featured++
		}
	}
	if featured > 1 {
		return nil, shared.NewDomainError("INVALID_IMAGES", "At most one image can be featured")
	}

	images := make([]catalog.ProductImage, 0, len(req.Images))
	for i, imgReq := range req.Images {
		position := i
		if imgReq.Position != nil {
			position = *imgReq.Position
		}

		image, err := catalog.NewProductImage(productID, imgReq.URL, position)
		if err != nil {
			return nil, err
		}
		image.SetAltText(imgReq.AltText, imgReq.Title)
		if imgReq.IsFeatured || (featured == 0 && i == 0) {
			image.Feature()
		}
		images = append(images, *image)
	}

	if err := s.imageRepo.ReplaceForProduct(ctx, productID, images); err != nil {
		return nil, err
	}

	s.rescore(ctx, productID)

	return ToImageResponses(images), nil
}

// UpsertSEO creates or replaces the SEO record of a product
func (s *ProductService) UpsertSEO(ctx context.Context, productID uuid.UUID, req UpsertSEORequest) (*SEOResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	seo, err := s.seoRepo.FindByProduct(ctx, productID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		seo = catalog.NewProductSEO(productID)
	}

	seo.Update(req.MetaTitle, req.MetaDescription, req.MetaKeywords, req.FocusKeyword, req.CanonicalURL)

	if err := s.seoRepo.Upsert(ctx, seo); err != nil {
		return nil, err
	}

	s.rescore(ctx, productID)

	response := ToSEOResponse(seo)
	return &response, nil
}

// publishDomainEvents publishes all pending domain events of the product
func (s *ProductService) publishDomainEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish events (errors are logged by the event bus, not propagated)
	_ = s.eventPublisher.Publish(ctx, events...)
	product.ClearDomainEvents()
}

// rescore recomputes the product's quality score. Scoring failures do
// not fail the catalog write.
func (s *ProductService) rescore(ctx context.Context, productID uuid.UUID) {
	if s.rescorer == nil {
		return
	}
	_, _ = s.rescorer.RescoreProduct(ctx, productID)
}

func dimensionsFromRequest(length, width, height *decimal.Decimal) catalog.Dimensions {
	dims := catalog.Dimensions{Length: decimal.Zero, Width: decimal.Zero, Height: decimal.Zero}
	if length != nil {
		dims.Length = *length
	}
	if width != nil {
		dims.Width = *width
	}
	if height != nil {
		dims.Height = *height
	}
	return dims
}
