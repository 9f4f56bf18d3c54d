package deliverynote

// ===== Requests =====

// SingleRequest: POST /delivery-notes
type SingleRequest struct {
	NoteNumber   *string       `json:"note_number,omitempty"`
	NoteDate     *string       `json:"note_date,omitempty"`
	Item         *LineItem     `json:"item"`
	CompanyInfo  *CompanyInfo  `json:"company_info"`
	CustomerInfo *CustomerInfo `json:"customer_info"`
}

// BatchRequest: POST /delivery-notes/batch
// customers は先頭のみ代表として全ページに使う
type BatchRequest struct {
	NoteNumber  *string        `json:"note_number,omitempty"`
	NoteDate    *string        `json:"note_date,omitempty"`
	Items       []LineItem     `json:"items"`
	CompanyInfo *CompanyInfo   `json:"company_info"`
	Customers   []CustomerInfo `json:"customers"`
}

// MailRequest: POST /delivery-notes/mail
type MailRequest struct {
	BatchRequest
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
}

// ===== Responses =====

type MailResponse struct {
	Sent     bool   `json:"sent"`
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
}

// リクエスト例
/*
	{
		"note_number": "D-2024-0001",
		"note_date": "2024年4月1日",
		"company_info": {
			"name": "株式会社サンプル",
			"postal_code": "100-0001",
			"address": "東京都千代田区千代田1-1",
			"phone": "03-0000-0000"
		},
		"customers": [
			{"code": "C001", "name": "得意先商店", "postal_code": "530-0001", "address": "大阪府大阪市北区梅田1-1"}
		],
		"items": [
			{"product_code": "P-100", "quantity": 3, "unit": "個", "unit_price": 1000, "remarks": ""}
		]
	}
*/
