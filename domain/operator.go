package domain

// Operator is a local sign-in account for the web UI. Password holds the
// bcrypt hash and is never rendered.
type Operator struct {
	ID        int64  `db:"id" json:"id"`
	Username  string `db:"username" json:"username"`
	Password  string `db:"password" json:"-"`
	CreatedAt string `db:"created_at" json:"created_at,omitempty"`
}
