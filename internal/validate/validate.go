package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tradepost/internal/domain"
)

// Result is a pass/fail outcome for expected validation failures.
// Validators never perform I/O; uniqueness, existence and ownership
// checks live in the services.
type Result struct {
	OK      bool
	Message string
}

func pass() Result           { return Result{OK: true, Message: "Validation successful."} }
func fail(msg string) Result { return Result{OK: false, Message: msg} }

func Signup(name, mobile, password string) Result {
	if strings.TrimSpace(name) == "" {
		return fail("Validation failed: 'name' is a required field.")
	}
	if strings.TrimSpace(mobile) == "" {
		return fail("Validation failed: 'mobile' is a required field.")
	}
	if password == "" {
		return fail("Validation failed: 'password' is a required field.")
	}
	if len(password) < 8 {
		return fail("Validation failed: Password must be at least 8 characters long.")
	}
	return pass()
}

func Login(mobile, password string) Result {
	if strings.TrimSpace(mobile) == "" {
		return fail("Validation failed: 'mobile' is a required field.")
	}
	if password == "" {
		return fail("Validation failed: 'password' is a required field.")
	}
	return pass()
}

// NewProduct checks the body of a product-add request. Numeric fields
// arrive as pointers so a missing field is distinguishable from zero.
func NewProduct(name string, price *float64, category string, stock, discountFactor *int) Result {
	if strings.TrimSpace(name) == "" {
		return fail("Validation failed: 'name' is a required field.")
	}
	if price == nil {
		return fail("Validation failed: 'price' is a required field.")
	}
	if category == "" {
		return fail("Validation failed: 'category' is a required field.")
	}
	if stock == nil {
		return fail("Validation failed: 'stock' is a required field.")
	}
	if *price <= 0 {
		return fail("Validation failed: Price must be a positive number.")
	}
	if *stock < 0 {
		return fail("Validation failed: Stock must be a non-negative number.")
	}
	if !domain.ValidCategory(category) {
		return fail(fmt.Sprintf("Validation failed: '%s' is not a valid category.", category))
	}
	if discountFactor != nil && !domain.ValidDiscount(*discountFactor) {
		return fail(fmt.Sprintf("Validation failed: '%d' is not a valid discount.", *discountFactor))
	}
	return pass()
}

// ProductID is a format-only check; existence is verified later.
func ProductID(id string) Result {
	if _, err := uuid.Parse(id); err != nil {
		return fail("Invalid product ID format.")
	}
	return pass()
}

func Keyword(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail("Validation failed: search keyword must not be empty.")
	}
	return pass()
}
