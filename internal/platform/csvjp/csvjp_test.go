package csvjp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestWriterShiftJIS(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write([]string{"納品書", "😀"}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(got), "納品書,") {
		t.Errorf("decoded = %q", got)
	}
	if strings.Contains(string(got), "😀") {
		t.Error("unsupported rune must be replaced")
	}
}

func TestReaderAndHeader(t *testing.T) {
	r, err := NewReader(strings.NewReader("\ufeffCode, 名前 \nA1,x,extra\nA2\n"), UTF8)
	if err != nil {
		t.Fatal(err)
	}
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	h := ParseHeader(recs[0], map[string]string{"code": "コード"})
	if !h.Has("コード", "名前") {
		t.Fatalf("header = %v", h)
	}
	got := []string{h.Get(recs[1], "名前"), h.Get(recs[2], "名前"), h.Get(recs[1], "無い列")}
	if diff := cmp.Diff([]string{"x", "", ""}, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestUnknownEncoding(t *testing.T) {
	if _, err := NewReader(strings.NewReader(""), "latin1"); err == nil {
		t.Error("NewReader() error = nil for unknown encoding")
	}
}

func TestBlank(t *testing.T) {
	if !Blank([]string{"", "  "}) || Blank([]string{"", "a"}) {
		t.Error("Blank() mismatch")
	}
}
