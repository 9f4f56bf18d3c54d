package company

import (
	"time"

	"SALES-backend/internal/deliverynote"
)

// Profile 自社情報。JSON ファイル1つに保存する。
type Profile struct {
	Name               string    `json:"name"`
	PostalCode         string    `json:"postal_code"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Fax                string    `json:"fax,omitempty"`
	Mail               string    `json:"mail,omitempty"`
	BankName           string    `json:"bank_name,omitempty"`
	BankBranch         string    `json:"bank_branch,omitempty"`
	BankAccountType    string    `json:"bank_account_type,omitempty"`
	BankAccountNumber  string    `json:"bank_account_number,omitempty"`
	BankAccountHolder  string    `json:"bank_account_holder,omitempty"`
	ContactPerson      string    `json:"contact_person,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateProfileRequest 部分更新（nil は変更なし）
type UpdateProfileRequest struct {
	Name               *string `json:"name,omitempty"`
	PostalCode         *string `json:"postal_code,omitempty"`
	Address            *string `json:"address,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Fax                *string `json:"fax,omitempty"`
	Mail               *string `json:"mail,omitempty"`
	BankName           *string `json:"bank_name,omitempty"`
	BankBranch         *string `json:"bank_branch,omitempty"`
	BankAccountType    *string `json:"bank_account_type,omitempty"`
	BankAccountNumber  *string `json:"bank_account_number,omitempty"`
	BankAccountHolder  *string `json:"bank_account_holder,omitempty"`
	ContactPerson      *string `json:"contact_person,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
}

func (p Profile) toCompanyInfo() deliverynote.CompanyInfo {
	return deliverynote.CompanyInfo{
		Name:               p.Name,
		PostalCode:         p.PostalCode,
		Address:            p.Address,
		Phone:              p.Phone,
		Fax:                p.Fax,
		Mail:               p.Mail,
		BankName:           p.BankName,
		BankBranch:         p.BankBranch,
		BankAccountType:    p.BankAccountType,
		BankAccountNumber:  p.BankAccountNumber,
		BankAccountHolder:  p.BankAccountHolder,
		ContactPerson:      p.ContactPerson,
		RegistrationNumber: p.RegistrationNumber,
	}
}

func (in UpdateProfileRequest) apply(p *Profile) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Name, in.Name)
	set(&p.PostalCode, in.PostalCode)
	set(&p.Address, in.Address)
	set(&p.Phone, in.Phone)
	set(&p.Fax, in.Fax)
	set(&p.Mail, in.Mail)
	set(&p.BankName, in.BankName)
	set(&p.BankBranch, in.BankBranch)
	set(&p.BankAccountType, in.BankAccountType)
	set(&p.BankAccountNumber, in.BankAccountNumber)
	set(&p.BankAccountHolder, in.BankAccountHolder)
	set(&p.ContactPerson, in.ContactPerson)
	set(&p.RegistrationNumber, in.RegistrationNumber)
}
