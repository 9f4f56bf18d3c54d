// Package csvjp Excel（日本語版）とやり取りする CSV の読み書き。
// 既定の文字コードは Windows の「ANSI」相当の Shift-JIS（CP932）。
package csvjp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	ShiftJIS = "sjis"
	UTF8     = "utf8"
)

func decoder(enc string) (transform.Transformer, error) {
	switch strings.ToLower(enc) {
	case "", ShiftJIS, "shift_jis", "cp932":
		return japanese.ShiftJIS.NewDecoder(), nil
	case UTF8, "utf-8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", enc)
	}
}

// NewReader enc で r をデコードする csv.Reader。列数は行ごとに可変。
func NewReader(r io.Reader, enc string) (*csv.Reader, error) {
	dec, err := decoder(enc)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	return cr, nil
}

// Writer Shift-JIS で書き出す csv.Writer。SJIS に無い文字は置換文字になる。
type Writer struct {
	*csv.Writer
	tw io.WriteCloser
}

func NewWriter(w io.Writer) *Writer {
	tw := transform.NewWriter(w, encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder()))
	return &Writer{Writer: csv.NewWriter(tw), tw: tw}
}

// Close バッファを吐き出してエンコーダを閉じる。呼ばないと末尾が欠ける。
func (w *Writer) Close() error {
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return w.tw.Close()
}

// Header 見出し行を列番号へ。aliases で別名を正規名に寄せる
type Header map[string]int

func ParseHeader(rec []string, aliases map[string]string) Header {
	h := Header{}
	for i, name := range rec {
		name = strings.TrimSpace(name)
		if alias, ok := aliases[strings.ToLower(name)]; ok {
			name = alias
		}
		h[name] = i
	}
	return h
}

func (h Header) Has(cols ...string) bool {
	for _, c := range cols {
		if _, ok := h[c]; !ok {
			return false
		}
	}
	return true
}

// Get 列 col の値（前後空白除去）。列が無い/短い行は空文字
func (h Header) Get(rec []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func Blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
