package deliverynote

import (
	"time"

	"github.com/go-pdf/fpdf"
)

// 用紙・レイアウト寸法（mm, A4縦）
const (
	pageWidth   = 210.0
	pageHeight  = 297.0
	faceHeight  = pageHeight / 2
	margin      = 8.0
	tableWidth  = pageWidth - margin*2
	rowHeight   = 6.0
	tableOffset = 52.0
)

// 同じ入力から同じバイト列を作るため、日時は固定
var documentTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// newDocument フォント登録済みの空ドキュメント
func newDocument(fonts *FontSet) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(documentTime)
	pdf.SetModificationDate(documentTime)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetTitle(titleBase, true)
	pdf.AddUTF8FontFromBytes(fonts.Family, "", fonts.Regular)
	return pdf
}

// drawSheet 用紙1枚（控え＋原本）を追加する
func drawSheet(pdf *fpdf.Fpdf, family string, s Sheet) {
	pdf.AddPage()
	for i, face := range s.Faces {
		drawFace(pdf, family, face, float64(i)*faceHeight)
	}
	// 切り取り線
	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Line(margin, faceHeight, pageWidth-margin, faceHeight)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetDrawColor(0, 0, 0)
}

func drawFace(pdf *fpdf.Fpdf, family string, f Face, top float64) {
	// タイトル
	pdf.SetFont(family, "", 16)
	pdf.SetXY(margin, top+6)
	pdf.CellFormat(tableWidth, 8, f.Title, "", 0, "C", false, 0, "")

	// 伝票番号・日付（右上）
	pdf.SetFont(family, "", 9)
	pdf.SetXY(pageWidth-margin-70, top+6)
	pdf.CellFormat(70, 4.5, "No. "+f.NoteNumber, "", 2, "R", false, 0, "")
	pdf.CellFormat(70, 4.5, "日付: "+f.NoteDate, "", 2, "R", false, 0, "")

	// 納品先（左）
	y := top + 18
	for i, line := range f.CustomerLines {
		size, border, h := 9.0, "", 5.0
		if i == len(f.CustomerLines)-1 {
			size, border, h = 11, "B", 7
		}
		pdf.SetFont(family, "", size)
		pdf.SetXY(margin, y)
		pdf.CellFormat(95, h, line, border, 0, "L", false, 0, "")
		y += h
	}

	// 自社（右）
	pdf.SetFont(family, "", 7.5)
	y = top + 18
	for i, line := range f.CompanyLines {
		if i == 0 {
			pdf.SetFontSize(10)
		} else {
			pdf.SetFontSize(7.5)
		}
		pdf.SetXY(margin+110, y)
		pdf.CellFormat(tableWidth-110, 3.8, line, "", 0, "L", false, 0, "")
		y += 3.8
	}

	// 明細表
	pdf.SetXY(margin, top+tableOffset)
	pdf.SetFillColor(230, 230, 230)
	drawRow(pdf, f.Header, true)
	for _, r := range f.Rows {
		drawRow(pdf, r.Cells, false)
	}
	drawRow(pdf, f.Total.Cells, false)
}

func drawRow(pdf *fpdf.Fpdf, cells [6]Cell, fill bool) {
	for i, c := range cells {
		pdf.SetFontSize(c.FontSize)
		ln := 0
		if i == len(cells)-1 {
			ln = 1
		}
		pdf.CellFormat(columns[i].Width, rowHeight, c.Text, "1", ln, c.Align, fill, 0, "")
	}
	pdf.SetX(margin)
}
