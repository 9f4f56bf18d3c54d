package mailer

import (
	"context"
	"errors"
	"io"

	"github.com/go-gomail/gomail"

	"SALES-backend/internal/platform/config"
)

// Dialer gomail.Dialer の送信部分（テストで差し替える）
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	from   string
	dialer Dialer
}

// New SMTP 設定から作る。host が空なら nil（メール送信無効）。
func New(c config.SMTPConfig) *Mailer {
	if c.Host == "" {
		return nil
	}
	return &Mailer{
		from:   c.From,
		dialer: gomail.NewDialer(c.Host, c.Port, c.Username, c.Password),
	}
}

func NewWithDialer(from string, d Dialer) *Mailer {
	return &Mailer{from: from, dialer: d}
}

// BuildMessage PDF をメモリから添付したメッセージ
func (m *Mailer) BuildMessage(to, subject, body, filename string, pdf []byte) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(filename,
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
	)
	return msg
}

// SendPDF gomail は context を見ないので、送信前にだけ確認する
func (m *Mailer) SendPDF(ctx context.Context, to, subject, body, filename string, pdf []byte) error {
	if m == nil || m.dialer == nil {
		return errors.New("smtp is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.dialer.DialAndSend(m.BuildMessage(to, subject, body, filename, pdf))
}
