package deliverynote

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/sync/errgroup"
)

const (
	StrategyCompose = "compose"
	StrategyMerge   = "merge"
)

func init() {
	// pdfcpu にユーザー設定ディレクトリを作らせない
	model.ConfigPath = "disable"
}

// Assembler 描画済みの用紙を1つのPDFにまとめる。途中で失敗したら何も返さない。
type Assembler interface {
	Assemble(ctx context.Context, sheets []Sheet) ([]byte, error)
}

// NewAssembler 設定値から実装を選ぶ
func NewAssembler(strategy string, fonts *FontSet, workers int) (Assembler, error) {
	switch strategy {
	case "", StrategyCompose:
		return &ComposeAssembler{fonts: fonts}, nil
	case StrategyMerge:
		return &MergeAssembler{fonts: fonts, workers: workers}, nil
	default:
		return nil, fmt.Errorf("unknown assembler strategy: %q", strategy)
	}
}

// ComposeAssembler 1つのドキュメントに全ページを順に描く（標準）
type ComposeAssembler struct {
	fonts *FontSet
}

func (a *ComposeAssembler) Assemble(ctx context.Context, sheets []Sheet) ([]byte, error) {
	pdf := newDocument(a.fonts)
	if pdf.Err() {
		return nil, ErrRender(0, pdf.Error())
	}
	for _, s := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := safeDraw(func() { drawSheet(pdf, a.fonts.Family, s) }); err != nil {
			return nil, ErrRender(s.Index, err)
		}
		if pdf.Err() {
			return nil, ErrRender(s.Index, pdf.Error())
		}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ErrRender(len(sheets), err)
	}
	return buf.Bytes(), nil
}

// MergeAssembler 用紙ごとに独立した1ページPDFを作り、最後にページ単位で結合する。
// 各ページの描画は並列でよいが、結合は必ず元の順序で行う。
type MergeAssembler struct {
	fonts   *FontSet
	workers int
}

func (a *MergeAssembler) Assemble(ctx context.Context, sheets []Sheet) ([]byte, error) {
	parts := make([][]byte, len(sheets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.workers, 1))
	for i, s := range sheets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := a.renderSingle(s)
			if err != nil {
				return err
			}
			parts[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return mergePDFs(parts)
}

func (a *MergeAssembler) renderSingle(s Sheet) ([]byte, error) {
	pdf := newDocument(a.fonts)
	if err := safeDraw(func() { drawSheet(pdf, a.fonts.Family, s) }); err != nil {
		return nil, ErrRender(s.Index, err)
	}
	if pdf.Err() {
		return nil, ErrRender(s.Index, pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ErrRender(s.Index, err)
	}
	return buf.Bytes(), nil
}

// mergePDFs 1ページPDFを順に連結する
func mergePDFs(parts [][]byte) ([]byte, error) {
	rsc := make([]io.ReadSeeker, len(parts))
	for i, p := range parts {
		rsc[i] = bytes.NewReader(p)
	}
	var out bytes.Buffer
	if err := api.MergeRaw(rsc, &out, false, nil); err != nil {
		return nil, ErrAssembly(err)
	}
	return out.Bytes(), nil
}

// safeDraw 描画中の panic をエラーとして返す
func safeDraw(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while drawing: %v", r)
		}
	}()
	fn()
	return nil
}
