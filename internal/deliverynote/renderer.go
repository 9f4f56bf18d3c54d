package deliverynote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// column 明細表の列定義。MaxLength はその幅で基本サイズのまま収まる文字数の目安。
type column struct {
	Title     string
	Width     float64 // mm
	MaxLength float64
	Align     string // fpdf の alignStr
}

// 明細表は6列固定
var columns = [6]column{
	{Title: "商品コード", Width: 50, MaxLength: 14, Align: "L"},
	{Title: "数量", Width: 22, MaxLength: 6, Align: "R"},
	{Title: "単位", Width: 16, MaxLength: 4, Align: "C"},
	{Title: "単価", Width: 30, MaxLength: 10, Align: "R"},
	{Title: "金額", Width: 34, MaxLength: 12, Align: "R"},
	{Title: "備考", Width: 42, MaxLength: 16, Align: "L"},
}

const (
	colUnitPrice = 3
	colAmount    = 4

	titleBase = "納品書"
	copyMark  = "（控）"
	totalText = "合計"
	attnText  = "御中"
)

type Cell struct {
	Text     string
	FontSize float64
	Align    string
}

type Row struct {
	Cells [6]Cell
	Blank bool
}

// Face 1面分（原本または控え）のレイアウト。描画前の純粋なデータ。
type Face struct {
	Title         string
	NoteNumber    string
	NoteDate      string
	IsCopy        bool
	CustomerLines []string
	CompanyLines  []string
	Header        [6]Cell
	Rows          []Row // 常に PageSize 行（明細 + 空行）
	Total         Row
	Subtotal      decimal.Decimal
	ItemCount     int
}

// BlankRows 空行の数
func (f Face) BlankRows() int {
	n := 0
	for _, r := range f.Rows {
		if r.Blank {
			n++
		}
	}
	return n
}

// Sheet 用紙1枚。控え（上）と原本（下）の2面。
type Sheet struct {
	Index int
	Total int
	Faces []Face
}

// RenderPage 1ページ分の面を組み立てる。入力だけで決まる。
func RenderPage(p Page, company CompanyInfo, customer CustomerInfo, noteNumber, noteDate string) Face {
	if noteNumber == "" {
		noteNumber = NoteNumberPlaceholder
	}
	f := Face{
		Title:         pageTitle(p),
		NoteNumber:    noteNumber,
		NoteDate:      noteDate,
		IsCopy:        p.IsCopy,
		CustomerLines: customerLines(customer),
		CompanyLines:  companyLines(company),
		Subtotal:      p.Subtotal(),
		ItemCount:     len(p.Items),
		Rows:          make([]Row, 0, PageSize),
	}
	for i, c := range columns {
		f.Header[i] = Cell{Text: c.Title, FontSize: BaseFontSize, Align: "C"}
	}
	for _, it := range p.Items {
		f.Rows = append(f.Rows, itemRow(it))
	}
	for len(f.Rows) < PageSize {
		f.Rows = append(f.Rows, blankRow())
	}
	f.Total = blankRow()
	f.Total.Blank = false
	f.Total.Cells[colUnitPrice] = Cell{Text: totalText, FontSize: BaseFontSize, Align: "C"}
	amount := formatAmount(f.Subtotal)
	f.Total.Cells[colAmount] = Cell{
		Text:     amount,
		FontSize: FitFontSize(amount, BaseFontSize, columns[colAmount].MaxLength, DefaultMinFontSize),
		Align:    "R",
	}
	return f
}

// RenderSheet ページグループを用紙1枚分にする
func RenderSheet(g PageGroup, req Request) Sheet {
	return Sheet{
		Index: g.Original.Index,
		Total: g.Original.Total,
		Faces: []Face{
			RenderPage(g.Copy, req.Company, req.Customer, req.NoteNumber, req.NoteDate),
			RenderPage(g.Original, req.Company, req.Customer, req.NoteNumber, req.NoteDate),
		},
	}
}

func pageTitle(p Page) string {
	var b strings.Builder
	b.WriteString(titleBase)
	if p.IsCopy {
		b.WriteString(copyMark)
	}
	if p.Total > 1 {
		fmt.Fprintf(&b, "（%d/%d）", p.Index, p.Total)
	}
	return b.String()
}

func itemRow(it LineItem) Row {
	texts := [6]string{
		it.ProductCode,
		formatQuantity(it.Quantity),
		it.Unit,
		formatAmount(it.UnitPrice),
		formatAmount(it.Amount()),
		it.Remarks,
	}
	var r Row
	for i, t := range texts {
		r.Cells[i] = Cell{
			Text:     t,
			FontSize: FitFontSize(t, BaseFontSize, columns[i].MaxLength, DefaultMinFontSize),
			Align:    columns[i].Align,
		}
	}
	return r
}

func blankRow() Row {
	r := Row{Blank: true}
	for i, c := range columns {
		r.Cells[i] = Cell{FontSize: BaseFontSize, Align: c.Align}
	}
	return r
}

func customerLines(c CustomerInfo) []string {
	var lines []string
	if c.Code != "" {
		lines = append(lines, "顧客コード: "+c.Code)
	}
	if c.PostalCode != "" {
		lines = append(lines, "〒"+c.PostalCode)
	}
	if c.Address != "" {
		lines = append(lines, c.Address)
	}
	lines = append(lines, strings.TrimSpace(c.Name+" "+attnText))
	return lines
}

func companyLines(c CompanyInfo) []string {
	lines := []string{c.Name}
	if addr := strings.TrimSpace(joinNonEmpty(" ", prefixed("〒", c.PostalCode), c.Address)); addr != "" {
		lines = append(lines, addr)
	}
	if tel := joinNonEmpty("  ", prefixed("TEL: ", c.Phone), prefixed("FAX: ", c.Fax)); tel != "" {
		lines = append(lines, tel)
	}
	if c.Mail != "" {
		lines = append(lines, "Mail: "+c.Mail)
	}
	if bank := joinNonEmpty(" ", c.BankName, c.BankBranch, c.BankAccountType, c.BankAccountNumber, c.BankAccountHolder); bank != "" {
		lines = append(lines, "振込先: "+bank)
	}
	if c.ContactPerson != "" {
		lines = append(lines, "担当: "+c.ContactPerson)
	}
	if c.RegistrationNumber != "" {
		lines = append(lines, "登録番号: "+c.RegistrationNumber)
	}
	return lines
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
