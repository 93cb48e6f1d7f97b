package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"tradepost/internal/domain"
)

type AccountRepo struct{ DB *sqlx.DB }

func NewAccountRepo(db *sqlx.DB) *AccountRepo { return &AccountRepo{DB: db} }

const accountCols = `id, name, mobile, COALESCE(email,'') AS email, password_hash,
  COALESCE(last_login,'') AS last_login, created_at, COALESCE(updated_at,'') AS updated_at`

// ByMobile returns the raw record including the password hash; the
// caller is the credential check in the account service.
func (r *AccountRepo) ByMobile(mobile string) (*domain.Account, error) {
	var a domain.Account
	err := r.DB.Get(&a, `SELECT `+accountCols+` FROM accounts WHERE mobile=?`, mobile)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) ByID(id string) (*domain.Account, error) {
	var a domain.Account
	err := r.DB.Get(&a, `SELECT `+accountCols+` FROM accounts WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) ExistsByMobile(mobile string) (bool, error) {
	var n int
	if err := r.DB.Get(&n, `SELECT COUNT(*) FROM accounts WHERE mobile=?`, mobile); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a new account and fills in the generated identifier.
func (r *AccountRepo) Create(a *domain.Account) error {
	a.ID = uuid.NewString()
	_, err := r.DB.Exec(`INSERT INTO accounts(id,name,mobile,email,password_hash)
	  VALUES(?,?,?,NULLIF(?,''),?)`, a.ID, a.Name, a.Mobile, a.Email, a.Hash)
	return err
}

// UpdateFields applies column-keyed values produced by the field
// mapper and returns the fresh record.
func (r *AccountRepo) UpdateFields(id string, cols map[string]any) (*domain.Account, error) {
	if len(cols) == 0 {
		return r.ByID(id)
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
	if _, err := r.DB.Exec(`UPDATE accounts SET `+set+` WHERE id=?`, args...); err != nil {
		return nil, err
	}
	return r.ByID(id)
}

func (r *AccountRepo) TouchLastLogin(id string) error {
	_, err := r.DB.Exec(`UPDATE accounts SET last_login=CURRENT_TIMESTAMP WHERE id=?`, id)
	return err
}
