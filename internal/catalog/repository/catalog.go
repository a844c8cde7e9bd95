package repository

import (
	"context"

	catalogerrors "handyhub/internal/catalog/errors"
	"handyhub/internal/store"
	"handyhub/pkg/model"
)

// CatalogRepository is read-only; catalog records only change through seeding.
type CatalogRepository interface {
	Providers(ctx context.Context) ([]model.Provider, error)
	FindProvider(ctx context.Context, id string) (model.Provider, error)
	FindBusiness(ctx context.Context, id string) (model.Business, error)
	JobListings(ctx context.Context) ([]model.JobListing, error)
}

type memoryCatalogRepository struct {
	providers  *store.Collection[model.Provider]
	businesses *store.Collection[model.Business]
	listings   *store.Collection[model.JobListing]
}

func NewMemoryCatalogRepository(s *store.Store) CatalogRepository {
	return &memoryCatalogRepository{
		providers:  s.Providers,
		businesses: s.Businesses,
		listings:   s.JobListings,
	}
}

func (r *memoryCatalogRepository) Providers(ctx context.Context) ([]model.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.providers.All(), nil
}

func (r *memoryCatalogRepository) FindProvider(ctx context.Context, id string) (model.Provider, error) {
	if err := ctx.Err(); err != nil {
		return model.Provider{}, err
	}
	p, ok := r.providers.Get(id)
	if !ok {
		return model.Provider{}, catalogerrors.ErrProviderNotFound
	}
	return p, nil
}

func (r *memoryCatalogRepository) FindBusiness(ctx context.Context, id string) (model.Business, error) {
	if err := ctx.Err(); err != nil {
		return model.Business{}, err
	}
	b, ok := r.businesses.Get(id)
	if !ok {
		return model.Business{}, catalogerrors.ErrBusinessNotFound
	}
	return b, nil
}

func (r *memoryCatalogRepository) JobListings(ctx context.Context) ([]model.JobListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.listings.All(), nil
}
