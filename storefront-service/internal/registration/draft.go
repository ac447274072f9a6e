package registration

import (
	"encoding/json"
	"fmt"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/validation"
)

type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepShopDetails
	StepDocuments
	StepBankDetails
)

var stepTitles = map[Step]string{
	StepPersonalInfo: "Personal Info",
	StepShopDetails:  "Shop Details",
	StepDocuments:    "Documents",
	StepBankDetails:  "Bank Details",
}

func (s Step) Title() string { return stepTitles[s] }

func (s Step) Valid() bool { return s >= StepPersonalInfo && s <= StepBankDetails }

// Steps lists the wizard steps in order, for the progress bar.
func Steps() []Step {
	return []Step{StepPersonalInfo, StepShopDetails, StepDocuments, StepBankDetails}
}

type PersonalInfo struct {
	Name     string `form:"name" json:"name" validate:"notblank"`
	Email    string `form:"email" json:"email" validate:"basicemail"`
	Password string `form:"password" json:"password" validate:"min=6"`
	Mobile   string `form:"mobno" json:"mobno" validate:"mobile"`
}

type ShopDetails struct {
	ShopName     string `form:"shopName" json:"shopName" validate:"notblank"`
	ShopAddress  string `form:"shopAddress" json:"shopAddress" validate:"notblank"`
	GSTNumber    string `form:"gstNumber" json:"gstNumber" validate:"omitempty,gstin"`
	AadharNumber string `form:"aadharNumber" json:"aadharNumber" validate:"aadhar"`
	PANNumber    string `form:"panNumber" json:"panNumber" validate:"pan"`
}

// Document is an uploaded identity image kept until the final submit.
type Document struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

type Documents struct {
	Front *Document `form:"aadharFrontImage" json:"front,omitempty" validate:"required"`
	Back  *Document `form:"aadharBackImage" json:"back,omitempty" validate:"required"`
}

type BankDetails struct {
	AccountNumber     string `form:"accountNumber" json:"accountNumber" validate:"notblank"`
	IFSCCode          string `form:"ifscCode" json:"ifscCode" validate:"ifsc"`
	BankName          string `form:"bankName" json:"bankName" validate:"notblank"`
	AccountHolderName string `form:"accountHolderName" json:"accountHolderName" validate:"notblank"`
}

// Draft is the wizard state of one browser session. It survives between
// requests in session storage.
type Draft struct {
	Step      Step                   `json:"step"`
	Personal  PersonalInfo           `json:"personal"`
	Shop      ShopDetails            `json:"shop"`
	Documents Documents              `json:"documents"`
	Bank      BankDetails            `json:"bank"`
	Errors    validation.FieldErrors `json:"errors,omitempty"`
}

func NewDraft() *Draft {
	return &Draft{Step: StepPersonalInfo}
}

func (d *Draft) Encode() ([]byte, error) {
	return json.Marshal(d)
}

func DecodeDraft(data []byte) (*Draft, error) {
	d := &Draft{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to decode registration draft: %w", err)
	}
	if !d.Step.Valid() {
		d.Step = StepPersonalInfo
	}
	return d, nil
}

// SetPersonal stores the personal step form. Errors of the fields that
// changed are cleared, as they are while typing.
func (d *Draft) SetPersonal(p PersonalInfo) {
	d.clearChanged(map[string][2]string{
		"name":     {d.Personal.Name, p.Name},
		"email":    {d.Personal.Email, p.Email},
		"password": {d.Personal.Password, p.Password},
		"mobno":    {d.Personal.Mobile, p.Mobile},
	})
	d.Personal = p
}

func (d *Draft) SetShop(s ShopDetails) {
	d.clearChanged(map[string][2]string{
		"shopName":     {d.Shop.ShopName, s.ShopName},
		"shopAddress":  {d.Shop.ShopAddress, s.ShopAddress},
		"gstNumber":    {d.Shop.GSTNumber, s.GSTNumber},
		"aadharNumber": {d.Shop.AadharNumber, s.AadharNumber},
		"panNumber":    {d.Shop.PANNumber, s.PANNumber},
	})
	d.Shop = s
}

// SetDocuments replaces the documents that were uploaded again; a nil
// document keeps the one already held.
func (d *Draft) SetDocuments(front, back *Document) {
	if front != nil {
		d.Documents.Front = front
		delete(d.Errors, "aadharFrontImage")
	}
	if back != nil {
		d.Documents.Back = back
		delete(d.Errors, "aadharBackImage")
	}
}

func (d *Draft) SetBank(b BankDetails) {
	d.clearChanged(map[string][2]string{
		"accountNumber":     {d.Bank.AccountNumber, b.AccountNumber},
		"ifscCode":          {d.Bank.IFSCCode, b.IFSCCode},
		"bankName":          {d.Bank.BankName, b.BankName},
		"accountHolderName": {d.Bank.AccountHolderName, b.AccountHolderName},
	})
	d.Bank = b
}

func (d *Draft) clearChanged(fields map[string][2]string) {
	for name, v := range fields {
		if v[0] != v[1] {
			delete(d.Errors, name)
		}
	}
}
