package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Credentials is the single admin identity shared by both admin surfaces.
// Password may hold a bcrypt hash or the plain secret.
type Credentials struct {
	Username string
	Password string
}

// Configured reports whether both halves of the pair are set.
func (c Credentials) Configured() bool {
	return c.Username != "" && c.Password != ""
}

func (c Credentials) CheckPassword(password string) bool {
	if c.Password == "" || password == "" {
		return false
	}
	if isBcryptHash(c.Password) {
		return CheckPasswordHash(password, c.Password)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}

func (c Credentials) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := c.CheckPassword(password)
	return c.Configured() && userOK && passOK
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
