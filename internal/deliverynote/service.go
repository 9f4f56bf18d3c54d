package deliverynote

import (
	"context"
	"errors"
	"log"
	"time"

	ulid "github.com/oklog/ulid/v2"
)

// Sender 生成したPDFをメールで送る（platform/mailer）
type Sender interface {
	SendPDF(ctx context.Context, to, subject, body, filename string, pdf []byte) error
}

// CompanySource 登録済みの自社情報（internal/company）。未登録なら nil, nil を返す。
type CompanySource interface {
	CompanyInfo(ctx context.Context) (*CompanyInfo, error)
}

type Service struct {
	fonts     *FontSet
	assembler Assembler
	sender    Sender
	company   CompanySource
}

// NewService フォントが初期化済みでなければ作れない
func NewService(fonts *FontSet, assembler Assembler, sender Sender) (*Service, error) {
	if fonts == nil {
		return nil, ErrFontInit(errors.New("fonts are not initialized"))
	}
	if assembler == nil {
		assembler = &ComposeAssembler{fonts: fonts}
	}
	return &Service{fonts: fonts, assembler: assembler, sender: sender}, nil
}

// Generate 分割 → 描画 → 結合。どこかで失敗したら全体を失敗にする（部分出力なし）。
func (s *Service) Generate(ctx context.Context, req Request) (*Document, error) {
	if len(req.Items) == 0 {
		return nil, ErrMissingItems
	}
	id := ulid.Make().String()
	started := time.Now()

	groups := Chunk(req.Items, PageSize)
	log.Printf("[INFO] delivery-note %s: %d items -> %d pages (no=%q)", id, len(req.Items), len(groups), req.DisplayNoteNumber())

	sheets := make([]Sheet, 0, len(groups))
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheets = append(sheets, RenderSheet(g, req))
	}

	body, err := s.assembler.Assemble(ctx, sheets)
	if err != nil {
		log.Printf("[ERROR] delivery-note %s: %v", id, err)
		return nil, err
	}

	display, ascii := Filenames(req.NoteNumber)
	log.Printf("[INFO] delivery-note %s: %d bytes in %s", id, len(body), time.Since(started))
	return &Document{
		Filename:      display,
		ASCIIFilename: ascii,
		Body:          body,
		Pages:         len(sheets),
	}, nil
}

// UseCompanySource company_info 省略時に登録済みの自社情報で補う（company.fill_missing）。
// 設定しなければ省略は MISSING_COMPANY_INFO のまま。
func (s *Service) UseCompanySource(src CompanySource) { s.company = src }

// fillCompany 明細が無いときは読まない（検査順 items → company → customer を保つ）
func (s *Service) fillCompany(ctx context.Context, info *CompanyInfo, hasItems bool) (*CompanyInfo, error) {
	if info != nil || s.company == nil || !hasItems {
		return info, nil
	}
	found, err := s.company.CompanyInfo(ctx)
	if err != nil {
		log.Printf("[ERROR] delivery-note company profile: %v", err)
		return nil, ErrInternal("自社情報の読み込みに失敗しました")
	}
	return found, nil
}

func (s *Service) GenerateSingle(ctx context.Context, in SingleRequest) (*Document, error) {
	info, err := s.fillCompany(ctx, in.CompanyInfo, in.Item != nil)
	if err != nil {
		return nil, err
	}
	in.CompanyInfo = info
	req, err := ValidateSingle(in)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, req)
}

func (s *Service) GenerateBatch(ctx context.Context, in BatchRequest) (*Document, error) {
	info, err := s.fillCompany(ctx, in.CompanyInfo, len(in.Items) > 0)
	if err != nil {
		return nil, err
	}
	in.CompanyInfo = info
	req, err := ValidateBatch(in)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, req)
}

// Mail 一括生成して添付送信する
func (s *Service) Mail(ctx context.Context, in MailRequest) (*MailResponse, error) {
	if s.sender == nil {
		return nil, ErrMail(errors.New("mail sender is not configured"))
	}
	if in.To == "" {
		return nil, ErrInvalid("to is required")
	}
	doc, err := s.GenerateBatch(ctx, in.BatchRequest)
	if err != nil {
		return nil, err
	}
	subject := in.Subject
	if subject == "" {
		subject = "納品書送付のご案内"
	}
	if err := s.sender.SendPDF(ctx, in.To, subject, "納品書を添付いたします。", doc.Filename, doc.Body); err != nil {
		log.Printf("[ERROR] delivery-note mail to %s: %v", in.To, err)
		return nil, ErrMail(err)
	}
	return &MailResponse{Sent: true, Filename: doc.Filename, Pages: doc.Pages}, nil
}
