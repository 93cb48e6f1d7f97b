package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tradepost/internal/log"
	"tradepost/internal/query"
	"tradepost/internal/services"
	"tradepost/internal/validate"
)

type ProductHandler struct {
	Products *services.ProductService
	Catalog  *services.CatalogService
}

type addProductRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price"`
	Category       string   `json:"category"`
	Stock          *int     `json:"stock"`
	DiscountFactor *int     `json:"discountFactor"`
}

func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var req addProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if v := validate.NewProduct(req.Name, req.Price, req.Category, req.Stock, req.DiscountFactor); !v.OK {
		applog.Security(c, "validation.fail", map[string]any{"op": "product.add", "reason": v.Message})
		return respondFail(c, fiber.StatusBadRequest, v.Message)
	}

	product, err := h.Products.AddProduct(req.Name, req.Description, req.Category, *req.Price, *req.Stock, req.DiscountFactor, callerID(c))
	if err != nil {
		return respondErr(c, "product.add.error", err)
	}

	applog.Audit(c, "product.add", map[string]any{"product_id": product.ID})
	return respond(c, fiber.StatusCreated, "Product added successfully!", product)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	params := query.Params{
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
		Categories: c.Query("categories"),
		OwnedByMe:  c.Query("ownedByMe"),
	}

	products, pagination, err := h.Catalog.ListProducts(params, callerID(c))
	if err != nil {
		return respondErr(c, "product.list.error", err)
	}

	return respond(c, fiber.StatusOK, "Products fetched successfully!", fiber.Map{
		"products":   products,
		"pagination": pagination,
	})
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if v := validate.Keyword(keyword); !v.OK {
		return respondFail(c, fiber.StatusBadRequest, v.Message)
	}

	matched, fetched, err := h.Catalog.SearchProducts(keyword)
	if err != nil {
		return respondErr(c, "product.search.error", err)
	}

	return respond(c, fiber.StatusOK, "Search completed.", fiber.Map{
		"keyword":      keyword,
		"totalFetched": fetched,
		"totalMatched": len(matched),
		"products":     matched,
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if v := validate.ProductID(productID); !v.OK {
		return respondFail(c, fiber.StatusBadRequest, v.Message)
	}

	product, err := h.Products.VerifyOwner(productID, callerID(c))
	if err != nil {
		return respondErr(c, "product.detail.error", err)
	}

	return respond(c, fiber.StatusOK, "Product fetched successfully!", product)
}

func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if v := validate.ProductID(productID); !v.OK {
		return respondFail(c, fiber.StatusBadRequest, v.Message)
	}
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "Invalid request body.")
	}

	product, err := h.Products.UpdateProduct(productID, callerID(c), payload)
	if err != nil {
		return respondErr(c, "product.edit.error", err)
	}

	applog.Audit(c, "product.edit", map[string]any{"product_id": productID})
	return respond(c, fiber.StatusOK, "Product updated successfully!", product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if v := validate.ProductID(productID); !v.OK {
		return respondFail(c, fiber.StatusBadRequest, v.Message)
	}

	if err := h.Products.DeleteProduct(productID, callerID(c)); err != nil {
		return respondErr(c, "product.delete.error", err)
	}

	applog.Audit(c, "product.delete", map[string]any{"product_id": productID})
	return respond(c, fiber.StatusOK, "Product deleted successfully.", nil)
}
