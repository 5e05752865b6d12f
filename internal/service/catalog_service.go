package service

import (
	"context"

	"cash-trader-be/internal/constant"
	"cash-trader-be/internal/dto"
	"cash-trader-be/internal/entity"
	"cash-trader-be/internal/mapper"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/specification"
	"cash-trader-be/internal/repository/unitofwork"
	"cash-trader-be/pkg/events"
	pktNats "cash-trader-be/pkg/nats"
	"cash-trader-be/pkg/register"
)

type ICatalogService interface {
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	SearchProducts(ctx context.Context, query string) (*dto.SearchProductsResponse, error)
	Refresh(ctx context.Context) error
}

type catalogService struct {
	uowFactory     unitofwork.RepositoryFactory
	catalog        *register.Catalog
	mapper         *mapper.ProductMapper
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, catalog *register.Catalog, eventPublisher *pktNats.Publisher, log logger.ILogger) ICatalogService {
	return &catalogService{
		uowFactory:     uowFactory,
		catalog:        catalog,
		mapper:         mapper.NewProductMapper(),
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProductRepository().FindOne(ctx, specification.ByNameEnFold{NameEn: req.NameEn})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, register.ErrDuplicateName
	}

	product := &entity.Product{
		NameEn:    req.NameEn,
		NameLocal: req.NameLocal,
		UnitPrice: req.UnitPrice,
	}
	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("CatalogService", "Product created", map[string]interface{}{"id": product.Id, "name_en": product.NameEn})
	return s.toResponse(product), nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, register.ErrProductNotFound
	}

	clash, err := uow.ProductRepository().FindOne(ctx,
		specification.ByNameEnFold{NameEn: req.NameEn},
		specification.ExcludeID{ID: req.Id},
	)
	if err != nil {
		return nil, err
	}
	if clash != nil {
		return nil, register.ErrDuplicateName
	}

	product.NameEn = req.NameEn
	product.NameLocal = req.NameLocal
	product.UnitPrice = req.UnitPrice
	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	return s.toResponse(product), nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if product == nil {
		return register.ErrProductNotFound
	}

	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}

	return s.Refresh(ctx)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx, specification.OrderByNameEn{})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = *s.toResponse(p)
	}
	return out, nil
}

func (s *catalogService) SearchProducts(ctx context.Context, query string) (*dto.SearchProductsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderByNameEn{}}
	if query != "" {
		specs = append(specs, specification.NameEnContains{Text: query})
	}

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.SearchProductsResponse{Query: query, Products: make([]dto.ProductResponse, len(products))}
	for i, p := range products {
		res.Products[i] = *s.toResponse(p)
	}
	return res, nil
}

// Refresh rebuilds the in-memory search index from the database. Every
// station sees the new snapshot on its next keystroke.
func (s *catalogService) Refresh(ctx context.Context) error {
	if err := s.catalog.Refresh(ctx, catalogSource{uowFactory: s.uowFactory, mapper: s.mapper}); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(constant.EventCatalogUpdated, map[string]interface{}{
			"product_count": s.catalog.Len(),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("CatalogService", "Failed to publish catalog update event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (s *catalogService) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:        p.Id,
		NameEn:    p.NameEn,
		NameLocal: p.NameLocal,
		UnitPrice: p.UnitPrice,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// catalogSource adapts the product repository to the search index loader.
type catalogSource struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.ProductMapper
}

func (cs catalogSource) ListAll(ctx context.Context) ([]register.Product, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx, specification.OrderByNameEn{})
	if err != nil {
		return nil, err
	}
	return cs.mapper.ToSnapshot(products), nil
}
