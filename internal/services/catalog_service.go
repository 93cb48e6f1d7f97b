package services

import (
	"strings"

	"tradepost/internal/domain"
	"tradepost/internal/query"
	"tradepost/internal/repos"
)

// searchFetchCap bounds the corpus pulled for a keyword scan.
const searchFetchCap = 10000

type CatalogService struct {
	Products *repos.ProductRepo
}

func NewCatalogService(products *repos.ProductRepo) *CatalogService {
	return &CatalogService{Products: products}
}

// Pagination is the list-response metadata.
type Pagination struct {
	CurrentPage   int `json:"currentPage"`
	TotalPages    int `json:"totalPages"`
	TotalProducts int `json:"totalProducts"`
	Limit         int `json:"limit"`
}

// ListProducts builds a bounded query from the raw parameters and
// returns one page plus count metadata from the same snapshot.
func (s *CatalogService) ListProducts(params query.Params, callerID string) ([]domain.Product, Pagination, error) {
	q := query.Build(params, callerID)
	products, total, err := s.Products.FindPage(q)
	if err != nil {
		return nil, Pagination{}, err
	}
	return products, Pagination{
		CurrentPage:   q.Page,
		TotalPages:    (total + q.Limit - 1) / q.Limit,
		TotalProducts: total,
		Limit:         q.Limit,
	}, nil
}

// SearchProducts fetches a bounded corpus and applies a
// case-insensitive literal substring match over name and description.
// The keyword is never compiled into a pattern.
func (s *CatalogService) SearchProducts(keyword string) (matched []domain.Product, fetched int, err error) {
	products, err := s.Products.FetchForSearch(searchFetchCap)
	if err != nil {
		return nil, 0, err
	}

	kw := strings.ToLower(strings.TrimSpace(keyword))
	matched = []domain.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), kw) ||
			strings.Contains(strings.ToLower(p.Description), kw) {
			matched = append(matched, p)
		}
	}
	return matched, len(products), nil
}
