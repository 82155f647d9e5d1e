package rating

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/rating"
	"github.com/pim/backend/internal/domain/shared"
)

// Repositories bundles the repositories a rescore reads and writes.
// Transaction scopes satisfy it, so a rescore can run inside the same
// database transaction as the catalog write that triggered it.
type Repositories interface {
	ProductRepo() catalog.ProductRepository
	CategoryRepo() catalog.CategoryRepository
	AttributeValueRepo() catalog.ProductAttributeValueRepository
	ImageRepo() catalog.ProductImageRepository
	SEORepo() catalog.ProductSEORepository
	CriterionRepo() rating.CriterionRepository
	DetailRepo() rating.DetailRepository
}

// RescoreWith recomputes the quality score of one product against the
// given repositories: every active criterion is evaluated, the detail
// rows are replaced wholesale and the weighted average is written back
// onto the product.
func RescoreWith(ctx context.Context, repos Repositories, productID uuid.UUID) (float64, error) {
	product, err := repos.ProductRepo().FindByID(ctx, productID)
	if err != nil {
		return 0, err
	}

	snapshot, err := buildSnapshot(ctx, repos, product)
	if err != nil {
		return 0, err
	}

	criteria, err := repos.CriterionRepo().FindActive(ctx)
	if err != nil {
		return 0, err
	}

	details := make([]rating.Detail, 0, len(criteria))
	var weightedSum, totalWeight float64
	for _, criterion := range criteria {
		evaluator, ok := rating.EvaluatorFor(criterion.Name)
		if !ok {
			// Rows without an evaluator do not contribute
			continue
		}

		score, suggestions := evaluator.Evaluate(snapshot)
		details = append(details, *rating.NewDetail(product.ID, criterion.ID, score, suggestions))
		weightedSum += score * criterion.Weight
		totalWeight += criterion.Weight
	}

	overall := 0.0
	if totalWeight > 0 {
		overall = weightedSum / totalWeight
	}

	if err := repos.DetailRepo().ReplaceForProduct(ctx, productID, details); err != nil {
		return 0, err
	}
	if err := repos.ProductRepo().UpdateRatingScore(ctx, productID, overall); err != nil {
		return 0, err
	}

	return overall, nil
}

// buildSnapshot reads the product's persisted state into the flat
// structure the evaluators score against
func buildSnapshot(ctx context.Context, repos Repositories, product *catalog.Product) (*rating.Snapshot, error) {
	snapshot := &rating.Snapshot{
		Name:             product.Name,
		SKU:              product.SKU,
		Type:             string(product.Type),
		RegularPrice:     product.RegularPrice,
		StockQuantity:    product.StockQuantity,
		Weight:           product.Weight,
		Description:      product.Description,
		ShortDescription: product.ShortDescription,
	}

	seo, err := repos.SEORepo().FindByProduct(ctx, product.ID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	} else {
		snapshot.MetaTitle = seo.MetaTitle
		snapshot.MetaDescription = seo.MetaDescription
		snapshot.FocusKeyword = seo.FocusKeyword
	}

	imageCount, err := repos.ImageRepo().CountForProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	snapshot.ImageCount = int(imageCount)

	imagesWithAlt, err := repos.ImageRepo().CountWithAltText(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	snapshot.ImagesWithAlt = int(imagesWithAlt)

	attributeCount, err := repos.AttributeValueRepo().CountForProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	snapshot.AttributeCount = int(attributeCount)

	categoryCount, err := repos.CategoryRepo().CountProductLinks(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	snapshot.CategoryCount = int(categoryCount)

	return snapshot, nil
}

// repoBundle adapts the service's individual repositories to the
// Repositories interface
type repoBundle struct {
	productRepo   catalog.ProductRepository
	categoryRepo  catalog.CategoryRepository
	valueRepo     catalog.ProductAttributeValueRepository
	imageRepo     catalog.ProductImageRepository
	seoRepo       catalog.ProductSEORepository
	criterionRepo rating.CriterionRepository
	detailRepo    rating.DetailRepository
}

func (b repoBundle) ProductRepo() catalog.ProductRepository { return b.productRepo }
func (b repoBundle) CategoryRepo() catalog.CategoryRepository { return b.categoryRepo }
func (b repoBundle) AttributeValueRepo() catalog.ProductAttributeValueRepository { return b.valueRepo }
func (b repoBundle) ImageRepo() catalog.ProductImageRepository { return b.imageRepo }
func (b repoBundle) SEORepo() catalog.ProductSEORepository { return b.seoRepo }
func (b repoBundle) CriterionRepo() rating.CriterionRepository { return b.criterionRepo }
func (b repoBundle) DetailRepo() rating.DetailRepository { return b.detailRepo }

// RatingService handles quality scoring operations
type RatingService struct {
	repos repoBundle
}

// NewRatingService creates a new RatingService
func NewRatingService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	valueRepo catalog.ProductAttributeValueRepository,
	imageRepo catalog.ProductImageRepository,
	seoRepo catalog.ProductSEORepository,
	criterionRepo rating.CriterionRepository,
	detailRepo rating.DetailRepository,
) *RatingService {
	return &RatingService{
		repos: repoBundle{
			productRepo:   productRepo,
			categoryRepo:  categoryRepo,
			valueRepo:     valueRepo,
			imageRepo:     imageRepo,
			seoRepo:       seoRepo,
			criterionRepo: criterionRepo,
			detailRepo:    detailRepo,
		},
	}
}

// RescoreProduct recomputes and persists the quality score of a product
func (s *RatingService) RescoreProduct(ctx context.Context, productID uuid.UUID) (float64, error) {
	return RescoreWith(ctx, s.repos, productID)
}

// Rescore recomputes the score of a product and returns it with its
// traffic-light color
func (s *RatingService) Rescore(ctx context.Context, productID uuid.UUID) (*RescoreResponse, error) {
	score, err := s.RescoreProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &RescoreResponse{
		ProductID:  productID,
		Score:      score,
		ScoreColor: rating.ScoreColor(score),
	}, nil
}

// RescoreBatch rescores the listed products. Individual failures are
// collected and reported; they never abort the batch.
func (s *RatingService) RescoreBatch(ctx context.Context, req BatchRescoreRequest) (*BatchRescoreResponse, error) {
	response := &BatchRescoreResponse{
		Total:    len(req.ProductIDs),
		Failures: []BatchRescoreFailure{},
	}

	for _, productID := range req.ProductIDs {
		if _, err := s.RescoreProduct(ctx, productID); err != nil {
			response.Failed++
			response.Failures = append(response.Failures, BatchRescoreFailure{
				ProductID: productID,
				Error:     err.Error(),
			})
			continue
		}
		response.Succeeded++
	}

	return response, nil
}

// RescoreAll rescores every product, page by page
func (s *RatingService) RescoreAll(ctx context.Context) (*BatchRescoreResponse, error) {
	response := &BatchRescoreResponse{Failures: []BatchRescoreFailure{}}

	const pageSize = 200
	for page := 1; ; page++ {
		filter := shared.Filter{
			Page:     page,
			PageSize: pageSize,
			OrderBy:  "created_at",
			OrderDir: "asc",
		}

		products, err := s.repos.productRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}

		for i := range products {
			response.Total++
			if _, err := s.RescoreProduct(ctx, products[i].ID); err != nil {
				response.Failed++
				response.Failures = append(response.Failures, BatchRescoreFailure{
					ProductID: products[i].ID,
					Error:     err.Error(),
				})
				continue
			}
			response.Succeeded++
		}

		if len(products) < pageSize {
			break
		}
	}

	return response, nil
}

// GetBreakdown returns the per-criterion score breakdown of a product
func (s *RatingService) GetBreakdown(ctx context.Context, productID uuid.UUID) (*BreakdownResponse, error) {
	product, err := s.repos.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	details, err := s.repos.detailRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	criteria, err := s.criteriaByID(ctx)
	if err != nil {
		return nil, err
	}

	response := &BreakdownResponse{
		ProductID:    productID,
		OverallScore: product.RatingScore,
		ScoreColor:   rating.ScoreColor(product.RatingScore),
		Details:      make([]DetailResponse, 0, len(details)),
	}

	for i := range details {
		detail := &details[i]
		entry := DetailResponse{
			CriterionID: detail.CriterionID,
			Score:       detail.Score,
			ScoreColor:  rating.ScoreColor(detail.Score),
			Suggestions: detail.SuggestionItems(),
			EvaluatedAt: detail.EvaluatedAt,
		}
		if criterion, ok := criteria[detail.CriterionID]; ok {
			entry.CriterionName = string(criterion.Name)
			entry.Weight = criterion.Weight
		}
		if entry.Suggestions == nil {
			entry.Suggestions = []string{}
		}
		response.Details = append(response.Details, entry)
	}

	return response, nil
}

// GetSuggestions returns the improvement suggestions of a product,
// weakest criterion first, skipping criteria without suggestions
func (s *RatingService) GetSuggestions(ctx context.Context, productID uuid.UUID) (*SuggestionsResponse, error) {
	if _, err := s.repos.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	details, err := s.repos.detailRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	criteria, err := s.criteriaByID(ctx)
	if err != nil {
		return nil, err
	}

	response := &SuggestionsResponse{
		ProductID: productID,
		Groups:    []SuggestionGroup{},
	}

	for i := range details {
		detail := &details[i]
		suggestions := detail.SuggestionItems()
		if len(suggestions) == 0 {
			continue
		}

		group := SuggestionGroup{
			Score:       detail.Score,
			Suggestions: suggestions,
		}
		if criterion, ok := criteria[detail.CriterionID]; ok {
			group.CriterionName = string(criterion.Name)
		}
		response.Groups = append(response.Groups, group)
	}

	return response, nil
}

// ListCriteria returns all scoring criteria
func (s *RatingService) ListCriteria(ctx context.Context, filter CriteriaListFilter) ([]CriterionResponse, error) {
	domainFilter := shared.Filter{
		Page:     1,
		PageSize: 100,
		OrderBy:  "name",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	criteria, err := s.repos.criterionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToCriterionResponses(criteria), nil
}

// UpdateCriterion adjusts the weight or active flag of a criterion
func (s *RatingService) UpdateCriterion(ctx context.Context, criterionID uuid.UUID, req UpdateCriterionRequest) (*CriterionResponse, error) {
	criterion, err := s.repos.criterionRepo.FindByID(ctx, criterionID)
	if err != nil {
		return nil, err
	}

	if req.Weight != nil {
		if err := criterion.SetWeight(*req.Weight); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			criterion.Activate()
		} else {
			criterion.Deactivate()
		}
	}

	if err := s.repos.criterionRepo.Save(ctx, criterion); err != nil {
		return nil, err
	}

	response := ToCriterionResponse(criterion)
	return &response, nil
}

func (s *RatingService) criteriaByID(ctx context.Context) (map[uuid.UUID]*rating.Criterion, error) {
	criteria, err := s.repos.criterionRepo.FindAll(ctx, shared.Filter{
		Page:     1,
		PageSize: 100,
		OrderBy:  "name",
		OrderDir: "asc",
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*rating.Criterion, len(criteria))
	for i := range criteria {
		byID[criteria[i].ID] = &criteria[i]
	}
	return byID, nil
}
