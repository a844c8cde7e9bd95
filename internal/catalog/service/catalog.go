package service

import (
	"context"
	"errors"
	"net/mail"

	catalogerrors "handyhub/internal/catalog/errors"
	"handyhub/internal/catalog/repository"
	"handyhub/pkg/config"
	apperrors "handyhub/pkg/errors"
	"handyhub/pkg/model"
	"handyhub/pkg/sanitizer"
	"handyhub/pkg/search"
)

type CatalogService interface {
	// SearchProviders matches query against name, category and skills, then
	// narrows by location against location and service area. Blank terms
	// match everything.
	SearchProviders(ctx context.Context, query, location string) ([]model.Provider, error)
	GetProvider(ctx context.Context, id string) (*model.Provider, error)
	GetBusiness(ctx context.Context, id string) (*model.BusinessProfile, error)
	SearchJobListings(ctx context.Context, query string) ([]model.JobListing, error)
}

type catalogService struct {
	repo repository.CatalogRepository
	cfg  *config.Config
}

func NewCatalogService(repo repository.CatalogRepository, cfg *config.Config) CatalogService {
	return &catalogService{
		repo: repo,
		cfg:  cfg,
	}
}

var (
	providerTextFields = []search.Field[model.Provider]{
		search.Text(func(p model.Provider) string { return p.BusinessName }),
		search.Text(func(p model.Provider) string { return p.Category }),
		search.List(func(p model.Provider) []string { return p.Skills }),
	}
	providerLocationFields = []search.Field[model.Provider]{
		search.Text(func(p model.Provider) string { return p.Location }),
		search.Text(func(p model.Provider) string { return p.ServiceArea }),
	}
	listingFields = []search.Field[model.JobListing]{
		search.Text(func(l model.JobListing) string { return l.Description }),
		search.Text(func(l model.JobListing) string { return l.ClientName }),
		search.Text(func(l model.JobListing) string { return l.Location }),
	}
)

func (s *catalogService) SearchProviders(ctx context.Context, query, location string) ([]model.Provider, error) {
	providers, err := s.repo.Providers(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list providers", "error", err)
		return nil, apperrors.Internal("Failed to retrieve providers", err)
	}

	return search.Where(providers,
		search.Contains(query, providerTextFields...),
		search.Contains(location, providerLocationFields...),
	), nil
}

func (s *catalogService) GetProvider(ctx context.Context, id string) (*model.Provider, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Provider ID cannot be empty")
	}

	p, err := s.repo.FindProvider(ctx, id)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrProviderNotFound) {
			return nil, apperrors.NotFoundWithID("Provider", id)
		}
		return nil, apperrors.Internal("Failed to retrieve provider", err)
	}
	return &p, nil
}

func (s *catalogService) GetBusiness(ctx context.Context, id string) (*model.BusinessProfile, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Business ID cannot be empty")
	}

	b, err := s.repo.FindBusiness(ctx, id)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrBusinessNotFound) {
			return nil, apperrors.NotFoundWithID("Business", id)
		}
		return nil, apperrors.Internal("Failed to retrieve business", err)
	}

	profile := &model.BusinessProfile{
		Business: b,
		PhoneURI: sanitizer.DialURI(b.Phone),
		EmailURI: mailURI(b.Email),
	}
	if b.Phone != "" && profile.PhoneURI == "" {
		s.cfg.Log.Warn("Business phone does not normalize", "id", id)
	}
	return profile, nil
}

func (s *catalogService) SearchJobListings(ctx context.Context, query string) ([]model.JobListing, error) {
	listings, err := s.repo.JobListings(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list job listings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve job listings", err)
	}
	return search.Filter(listings, query, listingFields...), nil
}

func mailURI(email string) string {
	addr, err := mail.ParseAddress(sanitizer.SingleLine(email))
	if err != nil {
		return ""
	}
	return "mailto:" + addr.Address
}
