package customers

import (
	"errors"
	"io"

	"SALES-backend/internal/platform/csvjp"
)

// CSV の文字コード。既定は Excel で開ける Shift-JIS
const (
	EncodingShiftJIS = csvjp.ShiftJIS
	EncodingUTF8     = csvjp.UTF8
)

var csvHeader = []string{"顧客コード", "顧客名", "郵便番号", "住所", "電話番号", "FAX", "メール"}

// 英語見出しでも取り込めるようにしておく
var headerAliases = map[string]string{
	"code":        "顧客コード",
	"name":        "顧客名",
	"postal_code": "郵便番号",
	"address":     "住所",
	"phone":       "電話番号",
	"fax":         "FAX",
	"email":       "メール",
}

var errMissingHeader = errors.New("CSVヘッダに 顧客コード / 顧客名 がありません")

// csvRow 取り込み1行分。Err があればその行はスキップする
type csvRow struct {
	Line     int
	Customer Customer
	Err      error
}

func WriteCSV(w io.Writer, list []Customer) error {
	cw := csvjp.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range list {
		record := []string{c.Code, c.Name, c.PostalCode, c.Address, c.Phone, c.Fax, c.Email}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return cw.Close()
}

// ReadCSV 1行目をヘッダとして列を解決し、データ行を返す
func ReadCSV(r io.Reader, enc string) ([]csvRow, error) {
	cr, err := csvjp.NewReader(r, enc)
	if err != nil {
		return nil, err
	}
	rec, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errMissingHeader
	}
	if err != nil {
		return nil, err
	}
	h := csvjp.ParseHeader(rec, headerAliases)
	if !h.Has("顧客コード", "顧客名") {
		return nil, errMissingHeader
	}

	var out []csvRow
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if csvjp.Blank(rec) {
			continue
		}
		line++
		c := Customer{
			Code:       h.Get(rec, "顧客コード"),
			Name:       h.Get(rec, "顧客名"),
			PostalCode: h.Get(rec, "郵便番号"),
			Address:    h.Get(rec, "住所"),
			Phone:      h.Get(rec, "電話番号"),
			Fax:        h.Get(rec, "FAX"),
			Email:      h.Get(rec, "メール"),
		}
		row := csvRow{Line: line, Customer: c}
		switch {
		case c.Code == "":
			row.Err = errors.New("顧客コードは必須です")
		case c.Name == "":
			row.Err = errors.New("顧客名は必須です")
		}
		out = append(out, row)
	}
	return out, nil
}
