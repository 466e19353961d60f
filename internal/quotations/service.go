package quotations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/quotedesk/quotedesk/internal/clients"
	"github.com/quotedesk/quotedesk/internal/companies"
	"github.com/quotedesk/quotedesk/internal/platform/httpx"
	"github.com/quotedesk/quotedesk/internal/pricing"
)

type Service struct {
	repo        Repository
	companyRepo companies.Repository
	clientRepo  clients.Repository
	validate    *validator.Validate
}

func NewService(repo Repository, companyRepo companies.Repository, clientRepo clients.Repository) *Service {
	return &Service{
		repo:        repo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		validate:    validator.New(),
	}
}

// Create allocates a quote number, derives the monetary fields from the
// item set and rates, and persists the quotation with its items in one
// transaction. New quotations always start in draft.
func (s *Service) Create(ctx context.Context, req QuotationRequest) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}

	company, err := s.companyRepo.Get(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companies.ErrNotFound) {
			return nil, fmt.Errorf("%w: company %d does not exist", httpx.ErrValidation, req.CompanyID)
		}
		return nil, fmt.Errorf("verify company: %w", err)
	}
	if _, err := s.clientRepo.Get(ctx, req.ClientID); err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %d does not exist", httpx.ErrValidation, req.ClientID)
		}
		return nil, fmt.Errorf("verify client: %w", err)
	}

	quotation := s.buildQuotation(req, company)
	quotation.Status = StatusDraft

	var quotationID int64
	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		number, err := repo.NextQuoteNumber(ctx, company.ID, company.QuotePrefix)
		if err != nil {
			return fmt.Errorf("allocate quote number: %w", err)
		}
		quotation.QuoteNumber = number

		id, err := repo.Create(ctx, quotation)
		if err != nil {
			return fmt.Errorf("create quotation: %w", err)
		}
		quotationID = id

		for _, item := range quotation.Items {
			item.QuotationID = quotationID
			if _, err := repo.InsertItem(ctx, item); err != nil {
				return fmt.Errorf("insert quotation item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, quotationID)
}

// Update replaces the whole record: header fields, rates, and the item
// set (delete-and-reinsert), with the derived fields recomputed from the
// request. The quote number never changes after creation.
func (s *Service) Update(ctx context.Context, id int64, req QuotationRequest) (*Quotation, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.Get(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companies.ErrNotFound) {
			return nil, fmt.Errorf("%w: company %d does not exist", httpx.ErrValidation, req.CompanyID)
		}
		return nil, fmt.Errorf("verify company: %w", err)
	}
	if _, err := s.clientRepo.Get(ctx, req.ClientID); err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %d does not exist", httpx.ErrValidation, req.ClientID)
		}
		return nil, fmt.Errorf("verify client: %w", err)
	}

	quotation := s.buildQuotation(req, company)
	quotation.Status = existing.Status
	if req.Status != nil {
		quotation.Status = *req.Status
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		if err := repo.Update(ctx, id, quotation); err != nil {
			return fmt.Errorf("update quotation: %w", err)
		}
		if err := repo.DeleteItems(ctx, id); err != nil {
			return fmt.Errorf("delete quotation items: %w", err)
		}
		for _, item := range quotation.Items {
			item.QuotationID = id
			if _, err := repo.InsertItem(ctx, item); err != nil {
				return fmt.Errorf("insert quotation item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Get join-fetches the quotation with its company, client, and ordered
// items attached.
func (s *Service) Get(ctx context.Context, id int64) (*Quotation, error) {
	quotation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.Get(ctx, quotation.CompanyID)
	if err != nil && !errors.Is(err, companies.ErrNotFound) {
		return nil, fmt.Errorf("fetch company: %w", err)
	}
	quotation.Company = company

	client, err := s.clientRepo.Get(ctx, quotation.ClientID)
	if err != nil && !errors.Is(err, clients.ErrNotFound) {
		return nil, fmt.Errorf("fetch client: %w", err)
	}
	quotation.Client = client

	return quotation, nil
}

func (s *Service) List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, int, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, 0, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return s.repo.List(ctx, req)
}

// Delete removes the quotation and its items.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Delete(ctx, id)
	})
}

// ExpireOverdue transitions sent quotations past their valid_until date
// to expired. Returns the number of quotations affected.
func (s *Service) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	return s.repo.ExpireOverdue(ctx, asOf)
}

// buildQuotation assembles the persistable record from the raw request:
// company defaults fill the gaps, items get contiguous zero-based sort
// orders in request order, and the four derived fields come out of the
// pricing engine.
func (s *Service) buildQuotation(req QuotationRequest, company *companies.Company) Quotation {
	currency := req.Currency
	if currency == "" {
		currency = company.DefaultCurrency
	}
	terms := req.Terms
	if terms == nil {
		terms = company.DefaultTerms
	}
	discountType := req.DiscountType
	if discountType == "" {
		discountType = pricing.DiscountPercentage
	}

	items := make([]Item, len(req.Items))
	for i, itemReq := range req.Items {
		total := pricing.LineTotal(itemReq.Quantity, itemReq.UnitPrice)
		if itemReq.Total != nil {
			total = *itemReq.Total
		}
		items[i] = Item{
			Description: itemReq.Description,
			Quantity:    itemReq.Quantity,
			UnitPrice:   itemReq.UnitPrice,
			Total:       total,
			SortOrder:   i,
		}
	}

	quotation := Quotation{
		CompanyID:     req.CompanyID,
		ClientID:      req.ClientID,
		IssueDate:     req.IssueDate,
		ValidUntil:    req.ValidUntil,
		Currency:      currency,
		TaxRate:       req.TaxRate,
		DiscountType:  discountType,
		DiscountValue: req.DiscountValue,
		Terms:         terms,
		Notes:         req.Notes,
		Items:         items,
	}

	totals := pricing.Compute(quotation.PricingItems(), req.TaxRate, discountType, req.DiscountValue)
	quotation.Subtotal = totals.Subtotal
	quotation.TaxAmount = totals.TaxAmount
	quotation.DiscountAmount = totals.DiscountAmount
	quotation.Total = totals.Total

	return quotation
}
