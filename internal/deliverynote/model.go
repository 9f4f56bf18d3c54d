package deliverynote

import "github.com/shopspring/decimal"

const (
	// PageSize: 1ページ（原本・控え共通）に載せる明細行数
	PageSize = 10

	// 伝票番号が無いときの表示
	NoteNumberPlaceholder = "未設定"
	// ファイル名の ASCII フォールバック用
	NoteNumberPlaceholderASCII = "unset"
)

// LineItem 明細1行
type LineItem struct {
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Remarks     string          `json:"remarks"`
}

// Amount 金額 = 数量 × 単価
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// CompanyInfo 自社情報（差出人）
type CompanyInfo struct {
	Name               string `json:"name"`
	PostalCode         string `json:"postal_code"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Fax                string `json:"fax,omitempty"`
	Mail               string `json:"mail,omitempty"`
	BankName           string `json:"bank_name,omitempty"`
	BankBranch         string `json:"bank_branch,omitempty"`
	BankAccountType    string `json:"bank_account_type,omitempty"`
	BankAccountNumber  string `json:"bank_account_number,omitempty"`
	BankAccountHolder  string `json:"bank_account_holder,omitempty"`
	ContactPerson      string `json:"contact_person,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}

// CustomerInfo 納品先
type CustomerInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
	Address    string `json:"address"`
	Phone      string `json:"phone,omitempty"`
}

// Request 検証済みの生成リクエスト。以降の処理はこれだけを見る。
type Request struct {
	NoteNumber string
	NoteDate   string
	Company    CompanyInfo
	Customer   CustomerInfo
	Items      []LineItem
}

// DisplayNoteNumber 印字・ファイル名用の伝票番号
func (r Request) DisplayNoteNumber() string {
	if r.NoteNumber == "" {
		return NoteNumberPlaceholder
	}
	return r.NoteNumber
}

// Page 1ページ分の明細（原本または控え）
type Page struct {
	Items  []LineItem
	Index  int // 1始まり
	Total  int
	IsCopy bool
}

// Subtotal そのページの明細だけの合計（ページをまたいで繰り越さない）
func (p Page) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range p.Items {
		sum = sum.Add(it.Amount())
	}
	return sum
}

// PageGroup 同じ明細を持つ控え・原本のペア。1枚の用紙に上下で印刷する。
type PageGroup struct {
	Copy     Page
	Original Page
}

// Document 生成結果
type Document struct {
	Filename      string // 表示用（非ASCIIを含む）
	ASCIIFilename string
	Body          []byte
	Pages         int
}
