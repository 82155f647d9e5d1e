package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	apprating "github.com/pim/backend/internal/application/rating"
	"github.com/pim/backend/internal/domain/catalog"
	"github.com/pim/backend/internal/domain/shared"
	"github.com/pim/backend/internal/domain/sync"
	"github.com/pim/backend/internal/infrastructure/woocommerce"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RemoteClient is the slice of the remote store API the synchronizer
// uses. The WooCommerce client implements it.
type RemoteClient interface {
	TestConnection(ctx context.Context) error
	ListProducts(ctx context.Context, page, perPage int) ([]woocommerce.Product, int, error)
	CreateProduct(ctx context.Context, product *woocommerce.Product) (*woocommerce.Product, error)
	UpdateProduct(ctx context.Context, remoteID int64, product *woocommerce.Product) (*woocommerce.Product, error)
	CreateCategory(ctx context.Context, category *woocommerce.Category) (*woocommerce.Category, error)
}

// SyncService orchestrates catalog synchronization with the remote
// store in both directions
type SyncService struct {
	client        RemoteClient
	txScope       TransactionScope
	jobRepo       sync.JobRepository
	productRepo   catalog.ProductRepository
	categoryRepo  catalog.CategoryRepository
	attributeRepo catalog.AttributeRepository
	valueRepo     catalog.ProductAttributeValueRepository
	imageRepo     catalog.ProductImageRepository
	seoRepo       catalog.ProductSEORepository
	logger        *zap.Logger
	pageSize      int
}

// NewSyncService creates a new SyncService
func NewSyncService(
	client RemoteClient,
	txScope TransactionScope,
	jobRepo sync.JobRepository,
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	attributeRepo catalog.AttributeRepository,
	valueRepo catalog.ProductAttributeValueRepository,
	imageRepo catalog.ProductImageRepository,
	seoRepo catalog.ProductSEORepository,
	logger *zap.Logger,
	pageSize int,
) *SyncService {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 50
	}
	return &SyncService{
		client:        client,
		txScope:       txScope,
		jobRepo:       jobRepo,
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		attributeRepo: attributeRepo,
		valueRepo:     valueRepo,
		imageRepo:     imageRepo,
		seoRepo:       seoRepo,
		logger:        logger,
		pageSize:      pageSize,
	}
}

// TestRemoteConnection verifies credentials and reachability of the
// remote store
func (s *SyncService) TestRemoteConnection(ctx context.Context) error {
	return s.client.TestConnection(ctx)
}

// ImportFromRemote pulls the remote catalog page by page and upserts
// every product locally. Each product is written in its own
// transaction; an item failure rolls back that product only and the
// run continues. A page fetch failure fails the whole job.
func (s *SyncService) ImportFromRemote(ctx context.Context) (*JobResponse, error) {
	job, err := sync.NewJob(sync.JobTypeImport)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	if err := job.Start(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info("Starting product import", zap.String("job_id", job.ID.String()))

	processed := 0
	for page := 1; ; page++ {
		remotes, total, err := s.client.ListProducts(ctx, page, s.pageSize)
		if err != nil {
			s.logger.Error("Import aborted, page fetch failed",
				zap.String("job_id", job.ID.String()),
				zap.Int("page", page),
				zap.Error(err))
			_ = job.Fail(fmt.Sprintf("fetching page %d failed: %v", page, err))
			if saveErr := s.jobRepo.Save(ctx, job); saveErr != nil {
				return nil, saveErr
			}
			response := ToJobResponse(job)
			return &response, nil
		}

		// The remote-reported total arrives with the first page
		if page == 1 && total >= 0 {
			job.SetTotal(total)
		}

		for i := range remotes {
			remote := &remotes[i]
			remoteID := remote.ID

			productID, err := s.importOne(ctx, remote)
			if err != nil {
				job.RecordFailure()
				s.saveItem(ctx, sync.NewFailedItem(job.ID, nil, &remoteID, err.Error()))
				s.logger.Warn("Import item failed",
					zap.String("job_id", job.ID.String()),
					zap.Int64("remote_id", remoteID),
					zap.Error(err))
				continue
			}
			job.RecordSuccess()
			s.saveItem(ctx, sync.NewSucceededItem(job.ID, &productID, &remoteID))
		}

		processed += len(remotes)
		if err := s.jobRepo.Save(ctx, job); err != nil {
			return nil, err
		}

		if len(remotes) < s.pageSize {
			break
		}
		if job.ItemsTotal > 0 && processed >= job.ItemsTotal {
			break
		}
	}

	if err := job.Complete(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info("Product import finished",
		zap.String("job_id", job.ID.String()),
		zap.Int("succeeded", job.ItemsSucceeded),
		zap.Int("failed", job.ItemsFailed))

	response := ToJobResponse(job)
	return &response, nil
}

// importOne upserts one remote product inside its own transaction and
// returns the local product ID
func (s *SyncService) importOne(ctx context.Context, remote *woocommerce.Product) (uuid.UUID, error) {
	var productID uuid.UUID
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		id, err := s.applyRemoteProduct(ctx, repos, remote)
		if err != nil {
			return err
		}
		productID = id
		return nil
	})
	return productID, err
}

// applyRemoteProduct maps one remote product onto the local catalog:
// the product row, its category links, attribute values, gallery and
// SEO record, followed by a rescore. All writes share one transaction.
func (s *SyncService) applyRemoteProduct(ctx context.Context, repos TransactionalRepositories, remote *woocommerce.Product) (uuid.UUID, error) {
	product, err := repos.ProductRepo().FindByRemoteID(ctx, remote.ID)
	if errors.Is(err, shared.ErrNotFound) {
		product, err = catalog.NewProduct(remote.Name, remote.SKU, catalog.ProductType(remote.Type))
		if err != nil {
			return uuid.Nil, err
		}
		if err := product.LinkRemote(remote.ID); err != nil {
			return uuid.Nil, err
		}
	} else if err != nil {
		return uuid.Nil, err
	}

	if err := product.Update(remote.Name, remote.Description, remote.ShortDescription); err != nil {
		return uuid.Nil, err
	}
	if remote.SKU != "" && !strings.EqualFold(remote.SKU, product.SKU) {
		if err := product.UpdateSKU(remote.SKU); err != nil {
			return uuid.Nil, err
		}
	}

	regular, err := parsePrice(remote.RegularPrice)
	if err != nil {
		return uuid.Nil, err
	}
	sale, err := parsePrice(remote.SalePrice)
	if err != nil {
		return uuid.Nil, err
	}
	if err := product.SetPrices(regular, sale); err != nil {
		return uuid.Nil, err
	}

	stockStatus := catalog.StockStatus(remote.StockStatus)
	if remote.StockStatus == "" {
		stockStatus = catalog.StockStatusInStock
	}
	if err := product.SetStock(remote.ManageStock, remote.StockQuantity, stockStatus); err != nil {
		return uuid.Nil, err
	}

	weight, err := parsePrice(remote.Weight)
	if err != nil {
		return uuid.Nil, err
	}
	dims := catalog.Dimensions{Length: decimal.Zero, Width: decimal.Zero, Height: decimal.Zero}
	if remote.Dimensions != nil {
		if dims.Length, err = parsePrice(remote.Dimensions.Length); err != nil {
			return uuid.Nil, err
		}
		if dims.Width, err = parsePrice(remote.Dimensions.Width); err != nil {
			return uuid.Nil, err
		}
		if dims.Height, err = parsePrice(remote.Dimensions.Height); err != nil {
			return uuid.Nil, err
		}
	}
	if err := product.SetShipping(weight, dims); err != nil {
		return uuid.Nil, err
	}

	if err := product.SetStatus(woocommerce.ToLocalStatus(remote.Status)); err != nil {
		return uuid.Nil, err
	}

	product.MarkSynced(time.Now())
	if err := repos.ProductRepo().Save(ctx, product); err != nil {
		return uuid.Nil, err
	}

	if err := s.applyRemoteCategories(ctx, repos, product.ID, remote.Categories); err != nil {
		return uuid.Nil, err
	}
	if err := s.applyRemoteAttributes(ctx, repos, product.ID, remote.Attributes); err != nil {
		return uuid.Nil, err
	}
	if err := s.applyRemoteImages(ctx, repos, product.ID, remote.Images); err != nil {
		return uuid.Nil, err
	}
	if err := s.applyRemoteSEO(ctx, repos, product.ID, remote.MetaData); err != nil {
		return uuid.Nil, err
	}

	if _, err := apprating.RescoreWith(ctx, repos, product.ID); err != nil {
		return uuid.Nil, err
	}

	return product.ID, nil
}

// applyRemoteCategories matches remote categories by remote ID,
// creating local ones on first sight, and replaces the product's links
func (s *SyncService) applyRemoteCategories(ctx context.Context, repos TransactionalRepositories, productID uuid.UUID, remoteCategories []woocommerce.Category) error {
	categoryIDs := make([]uuid.UUID, 0, len(remoteCategories))
	for _, rc := range remoteCategories {
		local, err := repos.CategoryRepo().FindByRemoteID(ctx, rc.ID)
		if errors.Is(err, shared.ErrNotFound) {
			local, err = catalog.NewCategory(rc.Name, rc.Slug)
			if err != nil {
				return err
			}
			if err := local.LinkRemote(rc.ID); err != nil {
				return err
			}
			if err := repos.CategoryRepo().Save(ctx, local); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		categoryIDs = append(categoryIDs, local.ID)
	}

	return repos.CategoryRepo().ReplaceProductLinks(ctx, productID, categoryIDs)
}

// applyRemoteAttributes matches remote attributes by name, creating
// text attributes on first sight. Option lists collapse into one
// comma-separated value per attribute.
func (s *SyncService) applyRemoteAttributes(ctx context.Context, repos TransactionalRepositories, productID uuid.UUID, remoteAttributes []woocommerce.Attribute) error {
	values := make([]catalog.ProductAttributeValue, 0, len(remoteAttributes))
	for _, ra := range remoteAttributes {
		if ra.Name == "" {
			continue
		}
		value := strings.Join(ra.Options, ", ")
		if value == "" {
			continue
		}

		attribute, err := repos.AttributeRepo().FindByName(ctx, ra.Name)
		if errors.Is(err, shared.ErrNotFound) {
			attribute, err = catalog.NewAttribute(ra.Name, "", catalog.AttributeTypeText)
			if err != nil {
				return err
			}
			if err := repos.AttributeRepo().Save(ctx, attribute); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		pav, err := catalog.NewProductAttributeValue(productID, attribute.ID, value, ra.Visible, ra.Variation)
		if err != nil {
			return err
		}
		values = append(values, *pav)
	}

	return repos.AttributeValueRepo().ReplaceForProduct(ctx, productID, values)
}

// applyRemoteImages replaces the gallery. The first remote image is the
// featured one, matching the remote store's convention.
func (s *SyncService) applyRemoteImages(ctx context.Context, repos TransactionalRepositories, productID uuid.UUID, remoteImages []woocommerce.Image) error {
	images := make([]catalog.ProductImage, 0, len(remoteImages))
	for i, ri := range remoteImages {
		image, err := catalog.NewProductImage(productID, ri.Src, i)
		if err != nil {
			return err
		}
		image.SetAltText(ri.Alt, ri.Name)
		if ri.ID > 0 {
			remoteID := ri.ID
			image.RemoteID = &remoteID
		}
		if i == 0 {
			image.Feature()
		}
		images = append(images, *image)
	}

	return repos.ImageRepo().ReplaceForProduct(ctx, productID, images)
}

// applyRemoteSEO upserts the SEO record from the Yoast meta fields.
// Products without any SEO meta keep their local record untouched.
func (s *SyncService) applyRemoteSEO(ctx context.Context, repos TransactionalRepositories, productID uuid.UUID, meta []woocommerce.MetaData) error {
	title, description, keywords, focusKeyword, canonical := woocommerce.SEOFromMeta(meta)
	if title == "" && description == "" && keywords == "" && focusKeyword == "" && canonical == "" {
		return nil
	}

	seo, err := repos.SEORepo().FindByProduct(ctx, productID)
	if errors.Is(err, shared.ErrNotFound) {
		seo = catalog.NewProductSEO(productID)
	} else if err != nil {
		return err
	}

	seo.Update(title, description, keywords, focusKeyword, canonical)
	return repos.SEORepo().Upsert(ctx, seo)
}

// ExportToRemote pushes the selected products to the remote store. An
// empty selection exports every published product. Products without a
// remote identifier are created remotely and linked; linked products
// are updated in place.
func (s *SyncService) ExportToRemote(ctx context.Context, req ExportRequest) (*JobResponse, error) {
	var products []catalog.Product
	var missing []uuid.UUID
	var err error

	if len(req.ProductIDs) > 0 {
		products, err = s.productRepo.FindByIDs(ctx, req.ProductIDs)
		if err != nil {
			return nil, err
		}
		found := make(map[uuid.UUID]bool, len(products))
		for i := range products {
			found[products[i].ID] = true
		}
		for _, id := range req.ProductIDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
	} else {
		products, err = s.productRepo.FindPublished(ctx)
		if err != nil {
			return nil, err
		}
	}

	job, err := sync.NewJob(sync.JobTypeExport)
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	if err := job.Start(); err != nil {
		return nil, err
	}
	job.SetTotal(len(products) + len(missing))
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info("Starting product export",
		zap.String("job_id", job.ID.String()),
		zap.Int("total", job.ItemsTotal))

	for _, id := range missing {
		productID := id
		job.RecordFailure()
		s.saveItem(ctx, sync.NewFailedItem(job.ID, &productID, nil, "product not found"))
		s.saveProgress(ctx, job)
	}

	for i := range products {
		product := &products[i]
		productID := product.ID

		remoteID, err := s.exportOne(ctx, product)
		if err != nil {
			job.RecordFailure()
			s.saveItem(ctx, sync.NewFailedItem(job.ID, &productID, product.RemoteID, err.Error()))
			s.saveProgress(ctx, job)
			s.logger.Warn("Export item failed",
				zap.String("job_id", job.ID.String()),
				zap.String("product_id", productID.String()),
				zap.Error(err))
			continue
		}
		job.RecordSuccess()
		s.saveItem(ctx, sync.NewSucceededItem(job.ID, &productID, &remoteID))
		s.saveProgress(ctx, job)
	}

	if err := job.Complete(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info("Product export finished",
		zap.String("job_id", job.ID.String()),
		zap.Int("succeeded", job.ItemsSucceeded),
		zap.Int("failed", job.ItemsFailed))

	response := ToJobResponse(job)
	return &response, nil
}

// exportOne pushes one product and persists the assigned remote
// identifier and sync timestamp
func (s *SyncService) exportOne(ctx context.Context, product *catalog.Product) (int64, error) {
	wire, err := s.buildRemoteProduct(ctx, product)
	if err != nil {
		return 0, err
	}

	var result *woocommerce.Product
	if product.RemoteID != nil {
		result, err = s.client.UpdateProduct(ctx, *product.RemoteID, wire)
	} else {
		result, err = s.client.CreateProduct(ctx, wire)
	}
	if err != nil {
		return 0, err
	}

	if err := product.LinkRemote(result.ID); err != nil {
		return 0, err
	}
	product.MarkSynced(time.Now())
	if err := s.productRepo.Save(ctx, product); err != nil {
		return 0, err
	}

	return result.ID, nil
}

// buildRemoteProduct assembles the outgoing wire representation of a
// product. Categories not yet known to the remote store are created
// there first so the product can reference them.
func (s *SyncService) buildRemoteProduct(ctx context.Context, product *catalog.Product) (*woocommerce.Product, error) {
	wire := &woocommerce.Product{
		Name:             product.Name,
		SKU:              product.SKU,
		Type:             string(product.Type),
		Status:           woocommerce.ToRemoteStatus(product.Status),
		Description:      product.Description,
		ShortDescription: product.ShortDescription,
		RegularPrice:     product.RegularPrice.String(),
		ManageStock:      product.ManageStock,
		StockQuantity:    product.StockQuantity,
		StockStatus:      string(product.StockStatus),
	}
	if !product.SalePrice.IsZero() {
		wire.SalePrice = product.SalePrice.String()
	}
	if !product.Weight.IsZero() {
		wire.Weight = product.Weight.String()
	}
	if !product.Dimensions.IsZero() {
		wire.Dimensions = &woocommerce.Dimensions{
			Length: product.Dimensions.Length.String(),
			Width:  product.Dimensions.Width.String(),
			Height: product.Dimensions.Height.String(),
		}
	}

	categories, err := s.categoryRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		category := &categories[i]
		if category.RemoteID == nil {
			created, err := s.client.CreateCategory(ctx, &woocommerce.Category{
				Name:        category.Name,
				Slug:        category.Slug,
				Description: category.Description,
			})
			if err != nil {
				return nil, err
			}
			if err := category.LinkRemote(created.ID); err != nil {
				return nil, err
			}
			if err := s.categoryRepo.Save(ctx, category); err != nil {
				return nil, err
			}
		}
		wire.Categories = append(wire.Categories, woocommerce.Category{ID: *category.RemoteID})
	}

	values, err := s.valueRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		attribute, err := s.attributeRepo.FindByID(ctx, v.AttributeID)
		if err != nil {
			return nil, err
		}
		wire.Attributes = append(wire.Attributes, woocommerce.Attribute{
			Name:      attribute.Name,
			Options:   []string{v.Value},
			Visible:   v.Visible,
			Variation: v.UsedForVariation,
		})
	}

	images, err := s.imageRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		remoteImage := woocommerce.Image{
			Src:      img.URL,
			Alt:      img.AltText,
			Name:     img.Title,
			Position: img.Position,
		}
		if img.RemoteID != nil {
			remoteImage.ID = *img.RemoteID
		}
		wire.Images = append(wire.Images, remoteImage)
	}

	seo, err := s.seoRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	} else {
		wire.MetaData = woocommerce.SEOToMeta(seo)
	}

	return wire, nil
}

// FullSync runs an import followed by an export of all published
// products. The export only runs when the import completed; two
// separate jobs track the two phases.
func (s *SyncService) FullSync(ctx context.Context) (*FullSyncResponse, error) {
	importJob, err := s.ImportFromRemote(ctx)
	if err != nil {
		return nil, err
	}

	response := &FullSyncResponse{ImportJob: *importJob}
	if importJob.Status != string(sync.JobStatusCompleted) {
		s.logger.Warn("Skipping export phase, import did not complete",
			zap.String("import_job_id", importJob.ID.String()),
			zap.String("status", importJob.Status))
		return response, nil
	}

	exportJob, err := s.ExportToRemote(ctx, ExportRequest{})
	if err != nil {
		return nil, err
	}
	response.ExportJob = exportJob

	return response, nil
}

// RunFullSync satisfies the scheduler's runner interface
func (s *SyncService) RunFullSync(ctx context.Context) error {
	result, err := s.FullSync(ctx)
	if err != nil {
		return err
	}
	if result.ExportJob == nil {
		return fmt.Errorf("full sync aborted: import job %s ended %s", result.ImportJob.ID, result.ImportJob.Status)
	}
	return nil
}

// GetJob retrieves a job with its per-item audit trail
func (s *SyncService) GetJob(ctx context.Context, jobID uuid.UUID) (*JobDetailResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	items, err := s.jobRepo.FindItems(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &JobDetailResponse{
		Job:   ToJobResponse(job),
		Items: ToJobItemResponses(items),
	}, nil
}

// GetLatestJob retrieves the most recently created job
func (s *SyncService) GetLatestJob(ctx context.Context) (*JobResponse, error) {
	job, err := s.jobRepo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	response := ToJobResponse(job)
	return &response, nil
}

// ListJobs retrieves jobs matching the filter
func (s *SyncService) ListJobs(ctx context.Context, filter JobListFilter) ([]JobResponse, int64, error) {
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

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.JobType != "" {
		domainFilter.Filters["job_type"] = filter.JobType
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	jobs, err := s.jobRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.jobRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToJobResponses(jobs), total, nil
}

// saveItem appends one item outcome. Audit trail write failures are
// logged, they do not affect the run.
// saveProgress persists the job's counters mid-run so a concurrent
// status poll sees progress advance item by item
func (s *SyncService) saveProgress(ctx context.Context, job *sync.Job) {
	if err := s.jobRepo.Save(ctx, job); err != nil {
		s.logger.Error("Failed to persist sync job progress",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
	}
}

func (s *SyncService) saveItem(ctx context.Context, item *sync.JobItem) {
	if err := s.jobRepo.SaveItem(ctx, item); err != nil {
		s.logger.Error("Failed to record sync job item",
			zap.String("job_id", item.JobID.String()),
			zap.Error(err))
	}
}

// parsePrice converts a remote decimal string. Empty strings mean zero.
func parsePrice(value string) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}
