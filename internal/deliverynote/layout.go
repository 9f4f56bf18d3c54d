package deliverynote

import (
	"math"
	"unicode/utf8"
)

const (
	BaseFontSize       = 8.0
	DefaultMinFontSize = 6.0
)

// FitFontSize 文字数がセル想定の maxLength を超えたら、超過率に比例してフォントを縮める。
// 折り返し・切り詰めはしない。minSize まで縮めても溢れる場合はそのまま。
// 文字数はルーン数で数える。
func FitFontSize(text string, base, maxLength, minSize float64) float64 {
	n := float64(utf8.RuneCountInString(text))
	if n == 0 || n <= maxLength {
		return base
	}
	return math.Max(minSize, base*maxLength/n)
}
