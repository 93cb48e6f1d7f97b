package repos

import (
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the process-wide connection, ensures the schema and
// seeds demo data. Initialized once at startup and injected into the
// repos; torn down only at process exit.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY and keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a demo account and a few products (idempotent; safe to run
	// every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Accounts. The mobile number is the login key; the UNIQUE index is
-- what actually closes the signup existence-check race.
CREATE TABLE IF NOT EXISTS accounts(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  mobile TEXT NOT NULL,
  email TEXT,
  password_hash TEXT NOT NULL,
  last_login TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_mobile ON accounts(mobile);

-- Products. created_by is an ownership reference, not a cascade.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price > 0),
  category TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  discount_factor INTEGER NOT NULL DEFAULT 0,
  final_total_price NUMERIC NOT NULL,
  created_by TEXT NOT NULL REFERENCES accounts(id),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_created_by ON products(created_by);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM accounts`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo account and products")

	hash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	ownerID := uuid.NewString()

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO accounts(id,name,mobile,email,password_hash)
	  VALUES(?,?,?,?,?)`, ownerID, "Demo Seller", "9000000001", "demo@tradepost.test", string(hash))

	seed := []struct {
		name, desc, category string
		price                float64
		stock, discount      int
	}{
		{"Wireless Headphones", "Over-ear, 30h battery", "Electronics", 79.99, 12, 10},
		{"Paperback Thriller", "Bestselling crime novel", "Books", 12.50, 40, 0},
		{"Running Shoes", "Lightweight trainers", "Sports & Outdoors", 59.00, 8, 15},
	}
	for _, s := range seed {
		total := s.price * float64(s.stock)
		final := total - total*float64(s.discount)/100
		tx.MustExec(`INSERT INTO products(id,name,description,price,category,stock,discount_factor,final_total_price,created_by)
		  VALUES(?,?,?,?,?,?,?,?,?)`,
			uuid.NewString(), s.name, s.desc, s.price, s.category, s.stock, s.discount, final, ownerID)
	}

	return tx.Commit()
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure
// from the sqlite driver.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
