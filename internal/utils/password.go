package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of a credential secret using the
// configured cost.  Secrets are never stored or compared as plain text.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash with a plain secret in constant
// time.  It reports only match/no-match so callers cannot distinguish
// an unknown user from a wrong password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
