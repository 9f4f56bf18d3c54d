package deliverynote

import (
	"fmt"
	"log"
	"os"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// FontOptions フォント初期化の設定
type FontOptions struct {
	Path       string // TTF のパス。空なら組み込みの Go Regular（和文なし）
	Family     string
	RequireCJK bool
}

// FontSet プロセス全体で共有する読み取り専用のフォント。起動時に一度だけ作る。
type FontSet struct {
	Family  string
	Regular []byte
	HasCJK  bool
	Source  string
}

// 帳票に必ず出る固定文言。RequireCJK のときはこれらのグリフが揃っていること。
const requiredGlyphs = titleBase + copyMark + totalText + attnText +
	"商品コード数量単位単価金額備考" + NoteNumberPlaceholder + "〒顧客振込先担当登録番号"

// LoadFonts フォントを読み込み、fpdf に登録できること・必要なグリフがあることを確かめる。
// 失敗したらサービスを起動してはいけない。
func LoadFonts(opt FontOptions) (*FontSet, error) {
	family := opt.Family
	if family == "" {
		family = "gothic"
	}

	data := goregular.TTF
	source := "embedded:goregular"
	if opt.Path != "" {
		b, err := os.ReadFile(opt.Path)
		if err != nil {
			return nil, ErrFontInit(fmt.Errorf("フォントファイルの読み込み失敗: %w", err))
		}
		data = b
		source = opt.Path
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, ErrFontInit(fmt.Errorf("フォントの解析失敗 (%s): %w", source, err))
	}
	missing, err := missingGlyphs(f, requiredGlyphs)
	if err != nil {
		return nil, ErrFontInit(err)
	}
	hasCJK := len(missing) == 0
	if !hasCJK {
		if opt.RequireCJK {
			return nil, ErrFontInit(fmt.Errorf("フォント %s に必要なグリフがありません: %q", source, string(missing)))
		}
		log.Printf("[WARN] font %s lacks %d required glyphs; Japanese labels will not be visible", source, len(missing))
	}

	// fpdf 側でも登録できるか一度試しておく
	probe := fpdf.New("P", "mm", "A4", "")
	probe.AddUTF8FontFromBytes(family, "", data)
	if probe.Err() {
		return nil, ErrFontInit(fmt.Errorf("fpdf へのフォント登録失敗 (%s): %w", source, probe.Error()))
	}

	return &FontSet{Family: family, Regular: data, HasCJK: hasCJK, Source: source}, nil
}

func missingGlyphs(f *sfnt.Font, text string) ([]rune, error) {
	var buf sfnt.Buffer
	var missing []rune
	seen := map[rune]bool{}
	for _, r := range text {
		if seen[r] {
			continue
		}
		seen[r] = true
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("グリフ検索失敗 %q: %w", r, err)
		}
		if idx == 0 {
			missing = append(missing, r)
		}
	}
	return missing, nil
}
