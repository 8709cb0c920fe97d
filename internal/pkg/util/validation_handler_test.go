package util

import (
	"errors"
	"testing"
)

type sampleDTO struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidateDTO_Valid(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Errorf("ValidateDTO() unexpected error: %v", err)
	}
}

func TestValidateDTO_FirstFailureReported(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Email: "not-an-email", Password: "x"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "Email" || vErr.Rule != "email" {
		t.Errorf("ValidationError = %+v, want first failing field Email/email", vErr)
	}
}

func TestValidateDTO_MinRule(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Email: "a@x.com", Password: "short"})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Field != "Password" || vErr.Rule != "min" {
		t.Errorf("ValidationError = %+v, want Password/min", vErr)
	}
}
