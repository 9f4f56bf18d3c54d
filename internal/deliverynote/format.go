package deliverynote

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 金額表示は日本語ロケールの桁区切り（通貨記号なし）
var printer = message.NewPrinter(language.Japanese)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// formatAmount 1000 → "1,000"、12.5 → "12.5"。小数は2桁に丸める。
// 整数部は float を経由しない（int64 を超える桁も落とさない）。
func formatAmount(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	abs := r.Abs()
	whole := abs.Truncate(0)

	var intPart string
	if whole.LessThanOrEqual(maxInt64) {
		intPart = printer.Sprintf("%d", whole.IntPart())
	} else {
		intPart = groupThousands(whole.String())
	}

	frac := ""
	if s := abs.String(); strings.Contains(s, ".") {
		frac = s[strings.IndexByte(s, '.'):]
	}
	return sign + intPart + frac
}

// groupThousands 数字列に3桁ごとのカンマを入れる
func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatQuantity 数量は区切りなしでそのまま
func formatQuantity(d decimal.Decimal) string {
	return d.String()
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filenames 伝票番号からダウンロード用ファイル名を作る（表示用 / ASCII）
func Filenames(noteNumber string) (string, string) {
	display := noteNumber
	if display == "" {
		display = NoteNumberPlaceholder
	}
	ascii := strings.Trim(unsafeFilename.ReplaceAllString(noteNumber, "_"), "_")
	if ascii == "" {
		ascii = NoteNumberPlaceholderASCII
	}
	return fmt.Sprintf("納品書_%s.pdf", display), fmt.Sprintf("delivery_note_%s.pdf", ascii)
}

// ContentDisposition RFC 5987 の filename* を付けた attachment ヘッダ
func ContentDisposition(display, ascii string) string {
	enc := strings.ReplaceAll(url.QueryEscape(display), "+", "%20")
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, ascii, enc)
}
