package products

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "商品一覧"

var xlsxHeader = []any{"商品コード", "商品名", "単位", "単価", "備考"}

// WriteXLSX 商品一覧をワークブックとして w に書き出す
func WriteXLSX(w io.Writer, list []Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &xlsxHeader); err != nil {
		return err
	}
	for i, p := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		// 単価は数値セルにして Excel 側で集計できるようにする
		row := []any{p.Code, p.Name, p.Unit, p.UnitPrice.InexactFloat64(), p.Notes}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	numFmt := "#,##0.##"
	priceStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}
	headStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetColStyle(exportSheet, "D", priceStyle); err != nil {
		return err
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, headStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(exportSheet, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(exportSheet, "E", "E", 24); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}
