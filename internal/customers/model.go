package customers

import (
	"time"

	"SALES-backend/internal/deliverynote"
)

// Customer 顧客マスタ1件。Code は業務上のキー（UNIQUE）。
type Customer struct {
	ID         uint64    `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	PostalCode string    `json:"postal_code"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Fax        string    `json:"fax,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToCustomerInfo 納品書の宛先情報へ変換
func (c Customer) ToCustomerInfo() deliverynote.CustomerInfo {
	return deliverynote.CustomerInfo{
		Code:       c.Code,
		Name:       c.Name,
		PostalCode: c.PostalCode,
		Address:    c.Address,
		Phone:      c.Phone,
	}
}
