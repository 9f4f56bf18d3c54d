package deliverynote

import (
	"errors"
	"fmt"
	"net/http"
)

// ===== Error model =====
type Code string

const (
	CodeMissingItems        Code = "MISSING_ITEMS"
	CodeMissingCompanyInfo  Code = "MISSING_COMPANY_INFO"
	CodeMissingCustomerInfo Code = "MISSING_CUSTOMER_INFO"
	CodeInvalidArgument     Code = "INVALID_ARGUMENT"
	CodeRender              Code = "RENDER_ERROR"
	CodeAssembly            Code = "ASSEMBLY_ERROR"
	CodeFontInit            Code = "FONT_INIT_ERROR"
	CodeMail                Code = "MAIL_ERROR"
	CodeInternal            Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
	Err     error // 原因（レスポンスには出さない）
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// Is: コードが同じなら同じ種類のエラーとみなす
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// errors.Is 比較用
var (
	ErrMissingItems        = &APIError{Code: CodeMissingItems, Message: "明細（items）が指定されていません"}
	ErrMissingCompanyInfo  = &APIError{Code: CodeMissingCompanyInfo, Message: "自社情報（company_info）が指定されていません"}
	ErrMissingCustomerInfo = &APIError{Code: CodeMissingCustomerInfo, Message: "顧客情報（customer_info / customers）が指定されていません"}
)

func ErrInvalid(msg string) *APIError { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func ErrRender(page int, err error) *APIError {
	return &APIError{Code: CodeRender, Message: fmt.Sprintf("%dページ目の描画に失敗しました", page), Err: err}
}

func ErrAssembly(err error) *APIError {
	return &APIError{Code: CodeAssembly, Message: "PDFの結合に失敗しました", Err: err}
}

func ErrFontInit(err error) *APIError {
	return &APIError{Code: CodeFontInit, Message: "フォントの初期化に失敗しました", Err: err}
}

func ErrMail(err error) *APIError {
	return &APIError{Code: CodeMail, Message: "メール送信に失敗しました", Err: err}
}

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeMissingItems, CodeMissingCompanyInfo, CodeMissingCustomerInfo, CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeMail:
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
