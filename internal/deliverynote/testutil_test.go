package deliverynote

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func testFonts(t *testing.T) *FontSet {
	t.Helper()
	fonts, err := LoadFonts(FontOptions{Family: "test"})
	if err != nil {
		t.Fatalf("LoadFonts() error = %v", err)
	}
	return fonts
}

func makeItems(n int) []LineItem {
	items := make([]LineItem, n)
	for i := range items {
		items[i] = LineItem{
			ProductCode: fmt.Sprintf("P-%03d", i+1),
			Quantity:    decimal.NewFromInt(int64(i + 1)),
			Unit:        "pc",
			UnitPrice:   decimal.NewFromInt(100),
			Remarks:     "",
		}
	}
	return items
}

func testCompany() CompanyInfo {
	return CompanyInfo{
		Name:       "Sample Co., Ltd.",
		PostalCode: "100-0001",
		Address:    "1-1 Chiyoda, Tokyo",
		Phone:      "03-0000-0000",
		Fax:        "03-0000-0001",
		BankName:   "Sample Bank",
		BankBranch: "Head Office",
	}
}

func testCustomer() CustomerInfo {
	return CustomerInfo{Code: "C001", Name: "Customer Shop", PostalCode: "530-0001", Address: "Umeda, Osaka"}
}

func testRequest(n int) Request {
	return Request{
		NoteNumber: "D-0001",
		NoteDate:   "2024-04-01",
		Company:    testCompany(),
		Customer:   testCustomer(),
		Items:      makeItems(n),
	}
}

func ptr[T any](v T) *T { return &v }
