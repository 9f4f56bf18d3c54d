package deliverynote

import "strings"

// ValidateSingle 単品リクエストを検証して Request に変換する
func ValidateSingle(in SingleRequest) (Request, error) {
	if in.Item == nil {
		return Request{}, ErrMissingItems
	}
	if in.CompanyInfo == nil {
		return Request{}, ErrMissingCompanyInfo
	}
	if in.CustomerInfo == nil {
		return Request{}, ErrMissingCustomerInfo
	}
	return Request{
		NoteNumber: deref(in.NoteNumber),
		NoteDate:   deref(in.NoteDate),
		Company:    *in.CompanyInfo,
		Customer:   *in.CustomerInfo,
		Items:      []LineItem{*in.Item},
	}, nil
}

// ValidateBatch 一括リクエストを検証して Request に変換する。
// 顧客は customers[0] を代表として全ページに使う（明細ごとの顧客は見ない）。
func ValidateBatch(in BatchRequest) (Request, error) {
	if len(in.Items) == 0 {
		return Request{}, ErrMissingItems
	}
	if in.CompanyInfo == nil {
		return Request{}, ErrMissingCompanyInfo
	}
	if len(in.Customers) == 0 {
		return Request{}, ErrMissingCustomerInfo
	}
	items := make([]LineItem, len(in.Items))
	copy(items, in.Items)
	return Request{
		NoteNumber: deref(in.NoteNumber),
		NoteDate:   deref(in.NoteDate),
		Company:    *in.CompanyInfo,
		Customer:   in.Customers[0],
		Items:      items,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
