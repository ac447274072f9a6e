package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Role int

const (
	RoleUnknown Role = iota
	RoleUser
	RoleSeller
	RoleAdmin
)

func ParseRole(s string) Role {
	switch s {
	case "user":
		return RoleUser
	case "seller":
		return RoleSeller
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleSeller:
		return "seller"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

type SellerStatus string

const (
	StatusPending  SellerStatus = "pending"
	StatusApproved SellerStatus = "approved"
	StatusRejected SellerStatus = "rejected"
)

// Ref is a document reference that the backend sends either as a bare id or
// as a populated object carrying an _id.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(s)
		return nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Ref(obj.ID)
	return nil
}

type Book struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	CoverImage  string          `json:"coverImage"`
	Seller      Ref             `json:"seller,omitempty"`
}

// CartItem references a populated book. Book is nil when the backend could
// not populate it, e.g. after the book was deleted.
type CartItem struct {
	Book     *Book `json:"BookId"`
	Quantity int   `json:"quantity"`
}

type Address struct {
	ID        string `json:"_id"`
	FullName  string `json:"fullName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
	Country   string `json:"country,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentRazorpay       PaymentMethod = "razorpay"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCashOnDelivery || p == PaymentRazorpay
}

type Order struct {
	ID          string          `json:"_id"`
	Status      string          `json:"status,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
}

type SellerDetails struct {
	ShopName         string      `json:"shopName"`
	ShopAddress      string      `json:"shopAddress"`
	GSTNumber        string      `json:"gstNumber,omitempty"`
	AadharNumber     string      `json:"aadharNumber"`
	PANNumber        string      `json:"panNumber"`
	AadharFrontImage string      `json:"aadharFrontImage,omitempty"`
	AadharBackImage  string      `json:"aadharBackImage,omitempty"`
	BankDetails      BankDetails `json:"bankDetails"`
}

// User is any account listed by the admin endpoints. Sellers carry
// SellerDetails and a moderation status.
type User struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Mobile        json.Number    `json:"mobno,omitempty"`
	Role          string         `json:"role"`
	Status        SellerStatus   `json:"status,omitempty"`
	SellerDetails *SellerDetails `json:"SellerDetails,omitempty"`
}

// DisplayStatus treats a missing status as pending, the way the lists show it.
func (u User) DisplayStatus() SellerStatus {
	if u.Status == "" {
		return StatusPending
	}
	return u.Status
}

// WebSession is the server-side counterpart of a browser: it holds the
// bearer token and any unfinished registration draft.
type WebSession struct {
	ID           string
	Token        string
	Draft        []byte
	DraftSavedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
