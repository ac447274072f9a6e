package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email  string `form:"email" validate:"basicemail"`
	PAN    string `form:"panNumber" validate:"pan"`
	IFSC   string `form:"ifscCode" validate:"ifsc"`
	GSTIN  string `form:"gstNumber" validate:"omitempty,gstin"`
	Name   string `form:"name" validate:"notblank"`
	Street string `form:"street" validate:"trimmin=5"`
}

func valid() sample {
	return sample{
		Email:  "a@b.co",
		PAN:    "ABCDE1234F",
		IFSC:   "HDFC0001234",
		Name:   "Asha",
		Street: "12 MG Road",
	}
}

func TestCheck(t *testing.T) {
	v := New()
	assert.Nil(t, Check(v, valid()))

	tests := []struct {
		name   string
		mutate func(*sample)
		field  string
		msg    string
	}{
		{"lowercase ifsc", func(s *sample) { s.IFSC = "hdfc0001234" }, "ifscCode", "Invalid IFSC code format"},
		{"ifsc without zero", func(s *sample) { s.IFSC = "HDFC1001234" }, "ifscCode", "Invalid IFSC code format"},
		{"pan trailing digit", func(s *sample) { s.PAN = "ABCDE12345" }, "panNumber", "Invalid PAN number format"},
		{"email shape", func(s *sample) { s.Email = "a@b" }, "email", "Email is invalid"},
		{"empty email", func(s *sample) { s.Email = "" }, "email", "Email is invalid"},
		{"blank name", func(s *sample) { s.Name = "   " }, "name", "Name is required"},
		{"bad gstin", func(s *sample) { s.GSTIN = "22AAAAA0000A1Z" }, "gstNumber", "Invalid GST number format"},
		{"short street", func(s *sample) { s.Street = "  ab  " }, "street", "Street must be at least 5 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			errs := Check(v, s)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestCheck_OptionalGSTIN(t *testing.T) {
	v := New()
	s := valid()
	s.GSTIN = "22AAAAA0000A1Z5"
	assert.Nil(t, Check(v, s))
}

func TestCheck_EmailIsUnanchored(t *testing.T) {
	v := New()
	s := valid()
	s.Email = "name <x@y.z>"
	assert.Nil(t, Check(v, s))
}
