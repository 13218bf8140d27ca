package seed

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// EnsureOperator creates the default sign-in account if it does not exist,
// so a fresh deployment is usable without manual setup.
func EnsureOperator(db *sqlx.DB, username, password string) {
	if username == "" || password == "" {
		return
	}

	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM operators WHERE username = ?)`, username); err != nil {
		log.Printf("unable to check for operator %s: %v", username, err)
		return
	}
	if exists {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("unable to hash password for %s: %v", username, err)
		return
	}
	if _, err := db.Exec(`INSERT INTO operators (username, password) VALUES (?, ?)`, username, hashed); err != nil {
		log.Printf("unable to create operator %s: %v", username, err)
		return
	}
	log.Printf("seeded operator account %q", username)
}
