package companies

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotedesk/quotedesk/internal/platform/httpx"
)

type mockRepository struct {
	companies map[int64]*Company
	nextID    int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{companies: make(map[int64]*Company), nextID: 1}
}

func (m *mockRepository) Get(ctx context.Context, id int64) (*Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (m *mockRepository) List(ctx context.Context, req ListCompaniesRequest) ([]Company, int, error) {
	result := []Company{}
	for _, c := range m.companies {
		result = append(result, *c)
	}
	return result, len(result), nil
}

func (m *mockRepository) Create(ctx context.Context, company Company) (*Company, error) {
	company.ID = m.nextID
	m.nextID++
	m.companies[company.ID] = &company
	return &company, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, company Company) (*Company, error) {
	if _, ok := m.companies[id]; !ok {
		return nil, ErrNotFound
	}
	company.ID = id
	m.companies[id] = &company
	return &company, nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.companies[id]; !ok {
		return ErrNotFound
	}
	delete(m.companies, id)
	return nil
}

func TestCreateCompanyAppliesBillingDefaults(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), CompanyRequest{Name: "Acme Corp"})
	require.NoError(t, err)

	assert.Equal(t, "USD", created.DefaultCurrency)
	assert.Equal(t, "QT-", created.QuotePrefix)
	assert.Zero(t, created.DefaultTaxRate)
}

func TestCreateCompanyKeepsExplicitDefaults(t *testing.T) {
	svc := NewService(newMockRepository())

	created, err := svc.Create(context.Background(), CompanyRequest{
		Name:            "Globex Ltd",
		DefaultCurrency: "EUR",
		DefaultTaxRate:  19,
		QuotePrefix:     "GX-",
	})
	require.NoError(t, err)

	assert.Equal(t, "EUR", created.DefaultCurrency)
	assert.Equal(t, "GX-", created.QuotePrefix)
	assert.InDelta(t, 19.0, created.DefaultTaxRate, 1e-9)
}

func TestCreateCompanyValidation(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), CompanyRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))

	bad := "not-an-email"
	_, err = svc.Create(context.Background(), CompanyRequest{Name: "Acme", Email: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpx.ErrValidation))
}

func TestUpdateCompanyNotFound(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Update(context.Background(), 42, CompanyRequest{Name: "Ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
