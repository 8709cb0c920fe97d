package security

import "testing"

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals plaintext")
	}
	if err = CheckPasswordHash("secret1", hash); err != nil {
		t.Errorf("CheckPasswordHash() failed for correct password: %v", err)
	}
}

func TestCheckPasswordHash_Mismatch(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if err = CheckPasswordHash("wrong-password", hash); err == nil {
		t.Error("CheckPasswordHash() accepted a wrong password")
	}
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("HashPassword() accepted an empty password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	second, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}
