package companies

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/quotedesk/quotedesk/internal/platform/httpx"
)

const (
	defaultCurrency    = "USD"
	defaultQuotePrefix = "QT-"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req CompanyRequest) (*Company, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}

	company := fromRequest(req)
	if company.DefaultCurrency == "" {
		company.DefaultCurrency = defaultCurrency
	}
	if company.QuotePrefix == "" {
		company.QuotePrefix = defaultQuotePrefix
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req CompanyRequest) (*Company, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}

	company := fromRequest(req)
	if company.DefaultCurrency == "" {
		company.DefaultCurrency = defaultCurrency
	}
	if company.QuotePrefix == "" {
		company.QuotePrefix = defaultQuotePrefix
	}

	updated, err := s.repo.Update(ctx, id, company)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Company, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListCompaniesRequest) ([]Company, int, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, 0, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return s.repo.List(ctx, req)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func fromRequest(req CompanyRequest) Company {
	return Company{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		PostalCode:      req.PostalCode,
		Country:         req.Country,
		TaxID:           req.TaxID,
		DefaultTaxRate:  req.DefaultTaxRate,
		DefaultCurrency: req.DefaultCurrency,
		DefaultTerms:    req.DefaultTerms,
		QuotePrefix:     req.QuotePrefix,
	}
}
