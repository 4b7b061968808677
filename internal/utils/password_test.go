package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3nh4-forte", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" {
		t.Fatalf("expected non-empty hash")
	}
	if hash == "s3nh4-forte" {
		t.Fatalf("hash must not equal the plain secret")
	}
	if !VerifyPassword(hash, "s3nh4-forte") {
		t.Fatalf("expected verify ok")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("expected verify fail")
	}
}
