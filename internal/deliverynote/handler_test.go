package deliverynote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeSender struct {
	to, subject, filename string
	pdf                   []byte
	err                   error
}

func (f *fakeSender) SendPDF(_ context.Context, to, subject, _, filename string, pdf []byte) error {
	f.to, f.subject, f.filename, f.pdf = to, subject, filename, pdf
	return f.err
}

type fakeCompany struct {
	info *CompanyInfo
	err  error
}

func (f *fakeCompany) CompanyInfo(context.Context) (*CompanyInfo, error) { return f.info, f.err }

func newTestRouter(t *testing.T, sender Sender) *gin.Engine {
	t.Helper()
	return newTestRouterWith(t, sender, nil)
}

func newTestRouterWith(t *testing.T, sender Sender, company CompanySource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fonts := testFonts(t)
	asm, err := NewAssembler(StrategyCompose, fonts, 1)
	if err != nil {
		t.Fatal(err)
	}
	svc, err := NewService(fonts, asm, sender)
	if err != nil {
		t.Fatal(err)
	}
	if company != nil {
		svc.UseCompanySource(company)
	}
	r := gin.New()
	RegisterRoutes(r.Group("/api/v2"), svc)
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) Code {
	t.Helper()
	var body errDTO
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v (%s)", err, w.Body.String())
	}
	return body.Error.Code
}

const companyJSON = `{"name":"Sample Co.","postal_code":"100-0001","address":"Tokyo","phone":"03-0000-0000"}`
const customerJSON = `{"code":"C001","name":"Shop","postal_code":"530-0001","address":"Osaka"}`

func batchBody(items int) string {
	var parts []string
	for i := 0; i < items; i++ {
		parts = append(parts, `{"product_code":"P","quantity":3,"unit":"pc","unit_price":1000,"remarks":""}`)
	}
	return `{"company_info":` + companyJSON + `,"customers":[` + customerJSON + `],"items":[` + strings.Join(parts, ",") + `]}`
}

func TestGenerateSingleHandler(t *testing.T) {
	r := newTestRouter(t, nil)
	body := `{"note_date":"2024-04-01","item":{"product_code":"P-1","quantity":3,"unit_price":"1000"},` +
		`"company_info":` + companyJSON + `,"customer_info":` + customerJSON + `}`
	w := post(r, "/api/v2/delivery-notes", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment;") || !strings.Contains(cd, `filename="delivery_note_unset.pdf"`) ||
		!strings.Contains(cd, "filename*=UTF-8''%E7%B4%8D%E5%93%81%E6%9B%B8_%E6%9C%AA%E8%A8%AD%E5%AE%9A.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if got := w.Header().Get("X-Page-Count"); got != "1" {
		t.Errorf("X-Page-Count = %q, want 1", got)
	}
	if got := pageCount(t, w.Body.Bytes()); got != 1 {
		t.Errorf("pages = %d, want 1", got)
	}
}

func TestGenerateBatchHandler(t *testing.T) {
	r := newTestRouter(t, nil)
	w := post(r, "/api/v2/delivery-notes/batch", batchBody(25))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := pageCount(t, w.Body.Bytes()); got != 3 {
		t.Errorf("pages = %d, want 3", got)
	}
}

func TestGenerateHandlerValidation(t *testing.T) {
	r := newTestRouter(t, nil)
	tests := []struct {
		name     string
		path     string
		body     string
		wantCode Code
	}{
		{"batch missing company", "/api/v2/delivery-notes/batch",
			`{"customers":[` + customerJSON + `],"items":[{"product_code":"P","quantity":1,"unit_price":1}]}`, CodeMissingCompanyInfo},
		{"batch empty items", "/api/v2/delivery-notes/batch",
			`{"company_info":` + companyJSON + `,"customers":[` + customerJSON + `],"items":[]}`, CodeMissingItems},
		{"batch items not a list", "/api/v2/delivery-notes/batch",
			`{"company_info":` + companyJSON + `,"customers":[` + customerJSON + `],"items":"P-1"}`, CodeMissingItems},
		{"batch no customers", "/api/v2/delivery-notes/batch",
			`{"company_info":` + companyJSON + `,"customers":[],"items":[{"product_code":"P","quantity":1,"unit_price":1}]}`, CodeMissingCustomerInfo},
		{"single missing company", "/api/v2/delivery-notes",
			`{"item":{"product_code":"P","quantity":1,"unit_price":1},"customer_info":` + customerJSON + `}`, CodeMissingCompanyInfo},
		{"single missing customer", "/api/v2/delivery-notes",
			`{"item":{"product_code":"P","quantity":1,"unit_price":1},"company_info":` + companyJSON + `}`, CodeMissingCustomerInfo},
		{"broken json", "/api/v2/delivery-notes", `{"item":`, CodeInvalidArgument},
		// 数値欄の型違いは描画まで進めず入口で弾く
		{"quantity not a number", "/api/v2/delivery-notes/batch",
			`{"company_info":` + companyJSON + `,"customers":[` + customerJSON + `],"items":[{"product_code":"P","quantity":"abc","unit_price":1}]}`, CodeInvalidArgument},
		{"unit price not a number", "/api/v2/delivery-notes",
			`{"item":{"product_code":"P","quantity":1,"unit_price":"1,000円"},"company_info":` + companyJSON + `,"customer_info":` + customerJSON + `}`, CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := errorCode(t, w); got != tt.wantCode {
				t.Errorf("code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestMailHandler(t *testing.T) {
	sender := &fakeSender{}
	r := newTestRouter(t, sender)
	body := strings.TrimSuffix(batchBody(12), "}") + `,"note_number":"D-77","to":"buyer@example.com"}`

	w := post(r, "/api/v2/delivery-notes/mail", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var res MailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Sent || res.Pages != 2 || res.Filename != "納品書_D-77.pdf" {
		t.Errorf("response = %+v", res)
	}
	if sender.to != "buyer@example.com" || sender.filename != "納品書_D-77.pdf" || !bytes.HasPrefix(sender.pdf, []byte("%PDF-")) {
		t.Errorf("sender got to=%q filename=%q", sender.to, sender.filename)
	}
}

func TestMailHandlerFailures(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		r := newTestRouter(t, &fakeSender{err: errors.New("connection refused")})
		body := strings.TrimSuffix(batchBody(1), "}") + `,"to":"buyer@example.com"}`
		w := post(r, "/api/v2/delivery-notes/mail", body)
		if w.Code != http.StatusBadGateway || errorCode(t, w) != CodeMail {
			t.Errorf("status = %d body = %s", w.Code, w.Body.String())
		}
	})
	t.Run("no recipient", func(t *testing.T) {
		r := newTestRouter(t, &fakeSender{})
		w := post(r, "/api/v2/delivery-notes/mail", batchBody(1))
		if w.Code != http.StatusBadRequest || errorCode(t, w) != CodeInvalidArgument {
			t.Errorf("status = %d body = %s", w.Code, w.Body.String())
		}
	})
	t.Run("no sender configured", func(t *testing.T) {
		r := newTestRouter(t, nil)
		body := strings.TrimSuffix(batchBody(1), "}") + `,"to":"buyer@example.com"}`
		w := post(r, "/api/v2/delivery-notes/mail", body)
		if w.Code != http.StatusBadGateway {
			t.Errorf("status = %d body = %s", w.Code, w.Body.String())
		}
	})
}

func TestGenerateFillsCompanyFromProfile(t *testing.T) {
	withoutCompany := `{"customers":[` + customerJSON + `],"items":[{"product_code":"P","quantity":1,"unit_price":1}]}`
	singleWithoutCompany := `{"item":{"product_code":"P","quantity":1,"unit_price":1},"customer_info":` + customerJSON + `}`
	stored := testCompany()

	t.Run("registered profile", func(t *testing.T) {
		r := newTestRouterWith(t, nil, &fakeCompany{info: &stored})
		for _, tc := range []struct{ path, body string }{
			{"/api/v2/delivery-notes/batch", withoutCompany},
			{"/api/v2/delivery-notes", singleWithoutCompany},
		} {
			w := post(r, tc.path, tc.body)
			if w.Code != http.StatusOK {
				t.Errorf("%s status = %d, body = %s", tc.path, w.Code, w.Body.String())
			}
		}
	})
	t.Run("request value wins", func(t *testing.T) {
		src := &fakeCompany{err: errors.New("must not be called")}
		r := newTestRouterWith(t, nil, src)
		if w := post(r, "/api/v2/delivery-notes/batch", batchBody(1)); w.Code != http.StatusOK {
			t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})
	t.Run("no profile registered", func(t *testing.T) {
		r := newTestRouterWith(t, nil, &fakeCompany{})
		w := post(r, "/api/v2/delivery-notes/batch", withoutCompany)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != CodeMissingCompanyInfo {
			t.Errorf("status = %d body = %s", w.Code, w.Body.String())
		}
	})
	t.Run("missing items checked first", func(t *testing.T) {
		r := newTestRouterWith(t, nil, &fakeCompany{err: errors.New("must not be called")})
		w := post(r, "/api/v2/delivery-notes/batch", `{"customers":[`+customerJSON+`],"items":[]}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != CodeMissingItems {
			t.Errorf("status = %d body = %s", w.Code, w.Body.String())
		}
	})
	t.Run("profile read failure", func(t *testing.T) {
		r := newTestRouterWith(t, nil, &fakeCompany{err: errors.New("disk error")})
		w := post(r, "/api/v2/delivery-notes/batch", withoutCompany)
		if w.Code != http.StatusInternalServerError || errorCode(t, w) != CodeInternal {
			t.Errorf("status = %d body = %s", w.Code, w.Body.String())
		}
	})
}
