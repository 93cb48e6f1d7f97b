package domain

type Product struct {
	ID              string  `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Description     string  `db:"description" json:"description,omitempty"`
	Price           float64 `db:"price" json:"price"`
	Category        string  `db:"category" json:"category"`
	Stock           int     `db:"stock" json:"stock"`
	DiscountFactor  int     `db:"discount_factor" json:"discountFactor"`
	FinalTotalPrice float64 `db:"final_total_price" json:"finalTotalPrice"`
	CreatedBy       string  `db:"created_by" json:"createdBy"`
	CreatedAt       string  `db:"created_at" json:"createdAt"`
	UpdatedAt       string  `db:"updated_at" json:"updatedAt,omitempty"`
}

// Categories is the closed set a product category must belong to.
var Categories = []string{
	"Electronics",
	"Books",
	"Clothing",
	"Home & Kitchen",
	"Sports & Outdoors",
	"Beauty & Personal Care",
	"Toys & Games",
	"Automotive",
}

// DiscountValues is the closed set of allowed discount percentages.
var DiscountValues = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50}

func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

func ValidDiscount(n int) bool {
	for _, d := range DiscountValues {
		if d == n {
			return true
		}
	}
	return false
}

// ComputeFinalPrice derives the stored final price: price x stock,
// reduced by the discount percentage. Computed at write time, never
// re-derived on read.
func ComputeFinalPrice(price float64, stock, discountFactor int) float64 {
	total := price * float64(stock)
	return total - total*float64(discountFactor)/100
}

// ProductSortFields is the allow-list of sortable fields; any other
// sort key falls back to createdAt.
var ProductSortFields = FieldMap{
	"name":            "name",
	"price":           "price",
	"discountFactor":  "discount_factor",
	"finalTotalPrice": "final_total_price",
	"stock":           "stock",
	"createdAt":       "created_at",
}

// ProductUpdateFields lists the fields a caller may change on edit.
var ProductUpdateFields = FieldMap{
	"name":           "name",
	"description":    "description",
	"price":          "price",
	"category":       "category",
	"stock":          "stock",
	"discountFactor": "discount_factor",
}

// ProductFields maps every app-facing product field to its column.
var ProductFields = FieldMap{
	"id":              "id",
	"name":            "name",
	"description":     "description",
	"price":           "price",
	"category":        "category",
	"stock":           "stock",
	"discountFactor":  "discount_factor",
	"finalTotalPrice": "final_total_price",
	"createdBy":       "created_by",
	"createdAt":       "created_at",
	"updatedAt":       "updated_at",
}
