package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tradepost/internal/domain"
	"tradepost/internal/query"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, COALESCE(description,'') AS description, price, category, stock,
  discount_factor, final_total_price, created_by, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) Create(p *domain.Product) error {
	p.ID = uuid.NewString()
	_, err := r.db.Exec(`INSERT INTO products(id,name,description,price,category,stock,discount_factor,final_total_price,created_by)
	  VALUES(?,?,NULLIF(?,''),?,?,?,?,?,?)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Stock, p.DiscountFactor, p.FinalTotalPrice, p.CreatedBy)
	return err
}

func (r *ProductRepo) Get(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPage returns one page of products plus the total match count.
// Both run inside a single read transaction so the count and the page
// observe the same set of writes.
func (r *ProductRepo) FindPage(q query.Query) ([]domain.Product, int, error) {
	where := `1=1`
	args := []any{}
	if len(q.Categories) > 0 {
		where += ` AND category IN (?)`
		args = append(args, q.Categories)
	}
	if q.OwnerID != "" {
		where += ` AND created_by = ?`
		args = append(args, q.OwnerID)
	}

	countSQL, countArgs, err := sqlx.In(`SELECT COUNT(*) FROM products WHERE `+where, args...)
	if err != nil {
		return nil, 0, err
	}

	// SortColumn comes from the sort allow-list, never from raw input.
	dir := "DESC"
	if !q.SortDesc {
		dir = "ASC"
	}
	pageSQL, pageArgs, err := sqlx.In(
		`SELECT `+productCols+` FROM products WHERE `+where+
			` ORDER BY `+q.SortColumn+` `+dir+`, id LIMIT ? OFFSET ?`,
		append(append([]any{}, args...), q.Limit, q.Skip)...)
	if err != nil {
		return nil, 0, err
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var total int
	if err := tx.Get(&total, countSQL, countArgs...); err != nil {
		return nil, 0, err
	}
	out := []domain.Product{}
	if err := tx.Select(&out, pageSQL, pageArgs...); err != nil {
		return nil, 0, err
	}
	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// FetchForSearch pulls up to limit products with no filter; the
// keyword match happens in-process. O(corpus) per request, a
// documented scale limitation.
func (r *ProductRepo) FetchForSearch(limit int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY created_at DESC, id LIMIT ?`, limit)
	return out, err
}

// UpdateFields applies column-keyed values produced by the field
// mapper and returns the fresh record.
func (r *ProductRepo) UpdateFields(id string, cols map[string]any) (*domain.Product, error) {
	if len(cols) == 0 {
		return r.Get(id)
	}
	set := ``
	args := []any{}
	for col, v := range cols {
		if set != "" {
			set += ","
		}
		set += col + "=?"
		args = append(args, v)
	}
	set += ",updated_at=CURRENT_TIMESTAMP"
	args = append(args, id)
	if _, err := r.db.Exec(`UPDATE products SET `+set+` WHERE id=?`, args...); err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *ProductRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
