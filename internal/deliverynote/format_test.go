package deliverynote

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"3000", "3,000"},
		{"1234567", "1,234,567"},
		{"-2500", "-2,500"},
		{"1234.5", "1,234.5"},
		{"12.345", "12.35"},
		{"-0.5", "-0.5"},
		{"980.50", "980.5"},
		{"999999999999999", "999,999,999,999,999"},
		{"99999999999999999", "99,999,999,999,999,999"},
		{"-99999999999999999", "-99,999,999,999,999,999"},
		{"12345678901234567890", "12,345,678,901,234,567,890"},
		{"123456789012345678901.25", "123,456,789,012,345,678,901.25"},
		{"99999999999999999.99", "99,999,999,999,999,999.99"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := formatAmount(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("formatAmount(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	for in, want := range map[string]string{
		"1": "1", "12": "12", "123": "123", "1234": "1,234", "123456": "123,456", "1234567": "1,234,567",
	} {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilenames(t *testing.T) {
	tests := []struct {
		name        string
		noteNumber  string
		wantDisplay string
		wantASCII   string
	}{
		{"placeholder", "", "納品書_未設定.pdf", "delivery_note_unset.pdf"},
		{"ascii", "D-2024-001", "納品書_D-2024-001.pdf", "delivery_note_D-2024-001.pdf"},
		{"japanese only", "第一号", "納品書_第一号.pdf", "delivery_note_unset.pdf"},
		{"mixed", "No 12/3", "納品書_No 12/3.pdf", "delivery_note_No_12_3.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, ascii := Filenames(tt.noteNumber)
			if display != tt.wantDisplay || ascii != tt.wantASCII {
				t.Errorf("Filenames(%q) = %q, %q; want %q, %q", tt.noteNumber, display, ascii, tt.wantDisplay, tt.wantASCII)
			}
		})
	}
}

func TestContentDisposition(t *testing.T) {
	got := ContentDisposition("納品書_未設定.pdf", "delivery_note_unset.pdf")
	want := `attachment; filename="delivery_note_unset.pdf"; filename*=UTF-8''%E7%B4%8D%E5%93%81%E6%9B%B8_%E6%9C%AA%E8%A8%AD%E5%AE%9A.pdf`
	if got != want {
		t.Errorf("ContentDisposition() =\n%s\nwant\n%s", got, want)
	}
}
