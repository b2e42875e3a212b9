package catalog_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appcatalog "github.com/worksy/worksy-api/application/catalog"
	"github.com/worksy/worksy-api/cmd/config"
	"github.com/worksy/worksy-api/constant"
	servicemocks "github.com/worksy/worksy-api/mocks/repository/service"
	"github.com/worksy/worksy-api/model"
	cerr "github.com/worksy/worksy-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCatalogApp_List(t *testing.T) {
	minPrice := 50.0
	maxPrice := 100.0

	t.Run("success: filter passed through to repository", func(t *testing.T) {
		repo := servicemocks.NewServiceRepository(t)
		filter := &model.ServiceFilter{
			Category: "plumbing",
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
		}
		want := []model.ServiceEntity{{ID: "s-1", Category: "plumbing", Price: 75}}
		repo.On("List", mock.Anything, filter).Return(want, nil).Once()

		app := appcatalog.NewCatalogApp(&config.Config{}, repo)
		got, err := app.List(context.Background(), filter)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("List() = %+v, want %+v", got, want)
		}
	})

	t.Run("success: location matched case-insensitively after the query", func(t *testing.T) {
		repo := servicemocks.NewServiceRepository(t)
		results := []model.ServiceEntity{
			{ID: "s-1", Location: "New York, NY"},
			{ID: "s-2", Location: "Los Angeles, CA"},
			{ID: "s-3", Location: "Brooklyn, New York"},
		}
		repo.On("List", mock.Anything, mock.AnythingOfType("*model.ServiceFilter")).Return(results, nil).Once()

		app := appcatalog.NewCatalogApp(&config.Config{}, repo)
		got, err := app.List(context.Background(), &model.ServiceFilter{Location: "new york"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != "s-1" || got[1].ID != "s-3" {
			t.Fatalf("List() = %+v, want s-1 and s-3", got)
		}
	})

	t.Run("success: demo mode serves the sample catalog without the repository", func(t *testing.T) {
		cfg := &config.Config{Catalog: config.CatalogConfig{DemoMode: true}}
		app := appcatalog.NewCatalogApp(cfg, servicemocks.NewServiceRepository(t))

		got, err := app.List(context.Background(), &model.ServiceFilter{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 6 {
			t.Fatalf("demo catalog size = %d, want 6", len(got))
		}
		for _, svc := range got {
			if svc.Availability != constant.ServiceAvailable {
				t.Fatalf("demo service %s availability = %q", svc.ID, svc.Availability)
			}
		}
	})

	t.Run("error: repository failure", func(t *testing.T) {
		repo := servicemocks.NewServiceRepository(t)
		repo.On("List", mock.Anything, mock.AnythingOfType("*model.ServiceFilter")).Return(nil, errors.New("db error")).Once()

		app := appcatalog.NewCatalogApp(&config.Config{}, repo)
		_, err := app.List(context.Background(), &model.ServiceFilter{})
		assertErrorCode(t, err, constant.ErrUpstream)
	})
}

func TestCatalogApp_Create(t *testing.T) {
	price := model.Decimal(75.5)

	t.Run("success: defaults applied", func(t *testing.T) {
		repo := servicemocks.NewServiceRepository(t)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ServiceEntity) bool {
			return ent.Title == "T" &&
				ent.Price == 75.5 &&
				ent.Availability == constant.ServiceAvailable &&
				ent.Rating == 0 &&
				ent.ReviewCount == 0 &&
				ent.Images != nil
		})).Return(&model.ServiceEntity{
			ID:           "s-1",
			Title:        "T",
			Price:        75.5,
			Availability: constant.ServiceAvailable,
			Images:       model.StringList{},
		}, nil).Once()

		app := appcatalog.NewCatalogApp(&config.Config{}, repo)
		got, err := app.Create(context.Background(), &model.CreateServiceRequest{
			Title:       "T",
			Description: "D",
			Category:    "plumbing",
			Price:       &price,
			ProviderID:  "p1",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ID != "s-1" || got.Price != 75.5 {
			t.Fatalf("Create() = %+v", got)
		}
	})

	t.Run("error: repository failure", func(t *testing.T) {
		repo := servicemocks.NewServiceRepository(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.ServiceEntity")).Return(nil, errors.New("db error")).Once()

		app := appcatalog.NewCatalogApp(&config.Config{}, repo)
		_, err := app.Create(context.Background(), &model.CreateServiceRequest{
			Title:       "T",
			Description: "D",
			Category:    "plumbing",
			Price:       &price,
			ProviderID:  "p1",
		})
		assertErrorCode(t, err, constant.ErrUpstream)
	})
}

func TestCatalogApp_Get(t *testing.T) {
	t.Run("error: service not found", func(t *testing.T) {
		repo := servicemocks.NewServiceRepository(t)
		repo.On("Get", mock.Anything, "missing").Return(nil, nil).Once()

		app := appcatalog.NewCatalogApp(&config.Config{}, repo)
		_, err := app.Get(context.Background(), "missing")
		assertErrorCode(t, err, constant.ErrNotFound)
	})
}

func assertErrorCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}
