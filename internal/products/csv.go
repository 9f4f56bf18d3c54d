package products

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"SALES-backend/internal/platform/csvjp"
)

var headerAliases = map[string]string{
	"code":       "商品コード",
	"name":       "商品名",
	"unit":       "単位",
	"unit_price": "単価",
	"notes":      "備考",
}

var errMissingHeader = errors.New("CSVヘッダに 商品コード / 商品名 がありません")

type csvRow struct {
	Line    int
	Product Product
	Err     error
}

// parsePrice "1,200" や "¥980" も受け付ける。負数は不可
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(",", "", "¥", "", "￥", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("単価が数値ではありません: %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, errors.New("単価は0以上にしてください")
	}
	return d, nil
}

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
	if !h.Has("商品コード", "商品名") {
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
		p := Product{
			Code:  h.Get(rec, "商品コード"),
			Name:  h.Get(rec, "商品名"),
			Unit:  h.Get(rec, "単位"),
			Notes: h.Get(rec, "備考"),
		}
		row := csvRow{Line: line}
		price, perr := parsePrice(h.Get(rec, "単価"))
		p.UnitPrice = price
		switch {
		case p.Code == "":
			row.Err = errors.New("商品コードは必須です")
		case p.Name == "":
			row.Err = errors.New("商品名は必須です")
		case perr != nil:
			row.Err = perr
		}
		row.Product = p
		out = append(out, row)
	}
	return out, nil
}
