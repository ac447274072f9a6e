// Package validation holds the form rules shared by the registration
// wizard, signup and the address form.
package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
)

var (
	emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)
	mobileRe   = regexp.MustCompile(`^\d{10}$`)
	aadharRe   = regexp.MustCompile(`^\d{12}$`)
	panRe      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	gstinRe    = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	ifscRe     = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// FieldErrors maps a form field name to the message shown under it.
type FieldErrors map[string]string

// messages holds one message per field. Each field carries a single tag
// whose failure also covers the empty value, so one message is enough.
var messages = map[string]string{
	"name":              "Name is required",
	"email":             "Email is invalid",
	"password":          "Password must be at least 6 characters",
	"mobno":             "Mobile number must be 10 digits",
	"shopName":          "Shop name is required",
	"shopAddress":       "Shop address is required",
	"aadharNumber":      "Aadhar number must be 12 digits",
	"panNumber":         "Invalid PAN number format",
	"gstNumber":         "Invalid GST number format",
	"aadharFrontImage":  "Aadhar front image is required",
	"aadharBackImage":   "Aadhar back image is required",
	"accountNumber":     "Account number is required",
	"ifscCode":          "Invalid IFSC code format",
	"bankName":          "Bank name is required",
	"accountHolderName": "Account holder name is required",
	"street":            "Street must be at least 5 characters",
	"city":              "City must be at least 2 characters",
	"state":             "State must be at least 2 characters",
	"zip":               "Zip must be at least 5 characters",
	"title":             "Title is required",
	"author":            "Author is required",
	"category":          "Category is required",
	"price":             "Price must be greater than 0",
	"discount":          "Discount must be between 0 and 100",
	"stock":             "Stock cannot be negative",
}

// New returns a validator that knows the marketplace field formats
// and reports fields by their form names.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("trimmin", func(fl validator.FieldLevel) bool {
		n := 0
		for range strings.TrimSpace(fl.Field().String()) {
			n++
		}
		min, err := strconv.Atoi(fl.Param())
		return err == nil && n >= min
	}))
	for tag, re := range map[string]*regexp.Regexp{
		"basicemail": emailShape,
		"mobile":     mobileRe,
		"aadhar":     aadharRe,
		"pan":        panRe,
		"gstin":      gstinRe,
		"ifsc":       ifscRe,
	} {
		must(v.RegisterValidation(tag, matcher(re)))
	}
	return v
}

// Check validates s and returns the messages of every failing field, or nil.
func Check(v *validator.Validate, s any) FieldErrors {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out[fe.Field()] = msg
	}
	return out
}

func matcher(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
