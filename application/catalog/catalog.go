package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/worksy/worksy-api/cmd/config"
	"github.com/worksy/worksy-api/constant"
	"github.com/worksy/worksy-api/model"
	servicerepo "github.com/worksy/worksy-api/repository/service"
	cerr "github.com/worksy/worksy-api/utils/errors"
	"github.com/worksy/worksy-api/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	List(ctx context.Context, filter *model.ServiceFilter) ([]model.ServiceEntity, error)
	Get(ctx context.Context, id string) (*model.ServiceEntity, error)
	Create(ctx context.Context, req *model.CreateServiceRequest) (*model.ServiceEntity, error)
	Update(ctx context.Context, id string, upd *model.ServiceUpdate) (*model.ServiceEntity, error)
	Delete(ctx context.Context, id string) error
}

type CatalogAppImpl struct {
	config      *config.Config
	serviceRepo servicerepo.ServiceRepository
}

func NewCatalogApp(config *config.Config, serviceRepo servicerepo.ServiceRepository) CatalogApp {
	return &CatalogAppImpl{
		config:      config,
		serviceRepo: serviceRepo,
	}
}

func (s *CatalogAppImpl) List(ctx context.Context, filter *model.ServiceFilter) ([]model.ServiceEntity, error) {
	if s.config.Catalog.DemoMode {
		return demoCatalog(), nil
	}

	services, err := s.serviceRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListServices] err serviceRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to fetch services")
	}

	// Location is matched after the primary query, so the 50-record cap
	// applies before this predicate.
	if filter.Location != "" {
		needle := strings.ToLower(filter.Location)
		filtered := make([]model.ServiceEntity, 0, len(services))
		for _, svc := range services {
			if strings.Contains(strings.ToLower(svc.Location), needle) {
				filtered = append(filtered, svc)
			}
		}
		services = filtered
	}

	return services, nil
}

func (s *CatalogAppImpl) Get(ctx context.Context, id string) (*model.ServiceEntity, error) {
	svc, err := s.serviceRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetService] err serviceRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to fetch services")
	}
	if svc == nil {
		return nil, cerr.SetCustomErrorMessage(constant.ErrNotFound, "Service not found")
	}
	return svc, nil
}

func (s *CatalogAppImpl) Create(ctx context.Context, req *model.CreateServiceRequest) (*model.ServiceEntity, error) {
	availability := req.Availability
	if availability == "" {
		availability = constant.ServiceAvailable
	}
	images := req.Images
	if images == nil {
		images = model.StringList{}
	}

	entity := &model.ServiceEntity{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        float64(*req.Price),
		Location:     req.Location,
		ProviderID:   req.ProviderID,
		ProviderName: req.ProviderName,
		Images:       images,
		Availability: availability,
		Rating:       float64(req.Rating),
		ReviewCount:  int(req.ReviewCount),
	}

	entity, err := s.serviceRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateService] err serviceRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to create service")
	}
	return entity, nil
}

func (s *CatalogAppImpl) Update(ctx context.Context, id string, upd *model.ServiceUpdate) (*model.ServiceEntity, error) {
	existing, err := s.serviceRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateService] err serviceRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update service")
	}
	if existing == nil {
		return nil, cerr.SetCustomErrorMessage(constant.ErrNotFound, "Service not found")
	}

	now := time.Now().UTC().Truncate(time.Second)
	if err := s.serviceRepo.Update(ctx, id, upd, now); err != nil {
		logger.Error("[UpdateService] err serviceRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update service")
	}

	updated, err := s.serviceRepo.Get(ctx, id)
	if err != nil || updated == nil {
		logger.Error("[UpdateService] err serviceRepo.Get after update", zap.Any("error", err))
		return nil, cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to update service")
	}
	return updated, nil
}

func (s *CatalogAppImpl) Delete(ctx context.Context, id string) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteService] err serviceRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomErrorMessage(constant.ErrUpstream, "Failed to delete service")
	}
	return nil
}

// demoCatalog returns the fixed sample set served in demo mode. Filters are
// not applied to it.
func demoCatalog() []model.ServiceEntity {
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	samples := []model.ServiceEntity{
		{
			ID:           "1",
			Title:        "Professional Plumbing Services",
			Description:  "Expert plumbing solutions for your home and business",
			Category:     "plumbing",
			Price:        75,
			Rating:       4.8,
			ProviderName: "John's Plumbing",
			Location:     "New York, NY",
		},
		{
			ID:           "2",
			Title:        "Electrical Installation & Repair",
			Description:  "Licensed electrician for all your electrical needs",
			Category:     "electrical",
			Price:        95,
			Rating:       4.9,
			ProviderName: "Spark Electric",
			Location:     "Los Angeles, CA",
		},
		{
			ID:           "3",
			Title:        "HVAC Maintenance & Repair",
			Description:  "Complete heating and cooling system services",
			Category:     "hvac",
			Price:        120,
			Rating:       4.7,
			ProviderName: "Climate Control Pro",
			Location:     "Chicago, IL",
		},
		{
			ID:           "4",
			Title:        "Professional House Cleaning",
			Description:  "Thorough cleaning services for your home",
			Category:     "cleaning",
			Price:        50,
			Rating:       4.6,
			ProviderName: "Clean & Shine",
			Location:     "Miami, FL",
		},
		{
			ID:           "5",
			Title:        "Interior & Exterior Painting",
			Description:  "High-quality painting services for any surface",
			Category:     "painting",
			Price:        85,
			Rating:       4.8,
			ProviderName: "Color Perfect Painters",
			Location:     "Seattle, WA",
		},
		{
			ID:           "6",
			Title:        "Flooring Installation & Repair",
			Description:  "Expert flooring solutions for all types",
			Category:     "flooring",
			Price:        150,
			Rating:       4.9,
			ProviderName: "Floor Masters",
			Location:     "Austin, TX",
		},
	}

	for i := range samples {
		samples[i].Images = model.StringList{"/api/placeholder/300/200"}
		samples[i].Availability = constant.ServiceAvailable
		samples[i].CreatedAt = base.Add(-time.Duration(i) * 24 * time.Hour)
		samples[i].UpdatedAt = samples[i].CreatedAt
	}
	return samples
}
