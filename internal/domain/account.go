package domain

type Account struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Mobile    string `db:"mobile" json:"mobile"`
	Email     string `db:"email" json:"email,omitempty"`
	Hash      string `db:"password_hash" json:"-"`
	LastLogin string `db:"last_login" json:"lastLogin,omitempty"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

// Sanitized clears the password hash so the record can leave the
// credential boundary.
func (a Account) Sanitized() Account {
	a.Hash = ""
	return a
}

// AccountUpdateFields lists the profile fields a caller may edit.
var AccountUpdateFields = FieldMap{
	"name":   "name",
	"email":  "email",
	"mobile": "mobile",
}
