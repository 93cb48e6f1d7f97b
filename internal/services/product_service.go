package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"tradepost/internal/apperr"
	"tradepost/internal/domain"
	"tradepost/internal/repos"
)

type ProductService struct {
	Products *repos.ProductRepo
}

func NewProductService(products *repos.ProductRepo) *ProductService {
	return &ProductService{Products: products}
}

// AddProduct stores a new product for the verified owner, computing
// the final price at write time. Input validation has already run in
// the handler.
func (s *ProductService) AddProduct(name, description, category string, price float64, stock int, discountFactor *int, ownerID string) (domain.Product, error) {
	discount := 0
	if discountFactor != nil && domain.ValidDiscount(*discountFactor) {
		discount = *discountFactor
	}

	p := domain.Product{
		Name:            name,
		Description:     description,
		Price:           price,
		Category:        category,
		Stock:           stock,
		DiscountFactor:  discount,
		FinalTotalPrice: domain.ComputeFinalPrice(price, stock, discount),
		CreatedBy:       ownerID,
	}
	if err := s.Products.Create(&p); err != nil {
		return domain.Product{}, err
	}
	stored, err := s.Products.Get(p.ID)
	if err != nil {
		return domain.Product{}, err
	}
	return *stored, nil
}

// VerifyOwner loads the product and confirms callerID created it. The
// loaded record is returned so callers needing the pre-mutation state
// avoid a second fetch.
func (s *ProductService) VerifyOwner(productID, callerID string) (*domain.Product, error) {
	p, err := s.Products.Get(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("Product not found.")
		}
		return nil, err
	}
	if p.CreatedBy != callerID {
		return nil, apperr.Forbidden("Forbidden. You can only modify your own products.")
	}
	return p, nil
}

// UpdateProduct applies an allow-listed subset of fields after the
// ownership check, recomputing the final price from the merged state.
func (s *ProductService) UpdateProduct(productID, callerID string, payload map[string]any) (domain.Product, error) {
	cleaned, err := validateProductUpdate(payload)
	if err != nil {
		return domain.Product{}, err
	}

	original, err := s.VerifyOwner(productID, callerID)
	if err != nil {
		return domain.Product{}, err
	}

	price := original.Price
	stock := original.Stock
	discount := original.DiscountFactor
	if v, ok := cleaned["price"]; ok {
		price = v.(float64)
	}
	if v, ok := cleaned["stock"]; ok {
		stock = v.(int)
	}
	if v, ok := cleaned["discountFactor"]; ok {
		discount = v.(int)
	}

	cols := domain.ProductUpdateFields.MapPayload(cleaned)
	cols["final_total_price"] = domain.ComputeFinalPrice(price, stock, discount)

	updated, err := s.Products.UpdateFields(productID, cols)
	if err != nil {
		return domain.Product{}, err
	}
	return *updated, nil
}

// DeleteProduct removes the product once ownership has been verified.
func (s *ProductService) DeleteProduct(productID, callerID string) error {
	if _, err := s.VerifyOwner(productID, callerID); err != nil {
		return err
	}
	n, err := s.Products.Delete(productID)
	if err != nil {
		return err
	}
	if n == 0 {
		// Safeguard; unreachable when VerifyOwner just succeeded.
		return errors.New("product could not be deleted or was already deleted")
	}
	return nil
}

// validateProductUpdate checks types and ranges of an update payload
// and coerces JSON numbers. Unknown fields survive here; the field
// mapper drops them before storage.
func validateProductUpdate(payload map[string]any) (map[string]any, error) {
	cleaned := make(map[string]any, len(payload))
	for k, v := range payload {
		switch k {
		case "name":
			s, ok := v.(string)
			if !ok || s == "" {
				return nil, apperr.Validation("Validation failed: 'name' must be a non-empty string.")
			}
			cleaned[k] = s
		case "description":
			s, ok := v.(string)
			if !ok {
				return nil, apperr.Validation("Validation failed: 'description' must be a string.")
			}
			cleaned[k] = s
		case "price":
			n, ok := v.(float64)
			if !ok || n <= 0 {
				return nil, apperr.Validation("Validation failed: Price must be a positive number.")
			}
			cleaned[k] = n
		case "stock":
			n, ok := asInt(v)
			if !ok || n < 0 {
				return nil, apperr.Validation("Validation failed: Stock must be a non-negative number.")
			}
			cleaned[k] = n
		case "category":
			s, ok := v.(string)
			if !ok || !domain.ValidCategory(s) {
				return nil, apperr.Validation(fmt.Sprintf("Validation failed: '%v' is not a valid category.", v))
			}
			cleaned[k] = s
		case "discountFactor":
			n, ok := asInt(v)
			if !ok || !domain.ValidDiscount(n) {
				return nil, apperr.Validation(fmt.Sprintf("Validation failed: '%v' is not a valid discount.", v))
			}
			cleaned[k] = n
		default:
			cleaned[k] = v
		}
	}
	return cleaned, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
