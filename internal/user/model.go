package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AuthMaster is one row of the company-code credential table. Passwords are
// stored as bcrypt hashes.
type AuthMaster struct {
	CompanyCode  string `json:"company_code"`
	PasswordHash string `json:"-"`
	CompanyName  string `json:"company_name"`
	Address      string `json:"address"`
	Tel          string `json:"tel"`
	Role         Role   `json:"role"`
}

// User is the per-device profile written on login. UserID comes from the
// client (LINE user id) and is the key order history is scoped by.
type User struct {
	UserID      string    `json:"user_id"`
	CompanyCode string    `json:"company_code"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
	Tel         string    `json:"tel"`
	CreatedAt   time.Time `json:"created_at"`
}
