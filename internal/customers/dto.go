package customers

type CreateCustomerRequest struct {
	Code       string `json:"code"` // 空なら自動採番
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Fax        string `json:"fax"`
	Email      string `json:"email"`
}

type UpdateCustomerRequest struct {
	Name       *string `json:"name,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Address    *string `json:"address,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Fax        *string `json:"fax,omitempty"`
	Email      *string `json:"email,omitempty"`
}

type ListCustomersResponse struct {
	Items      []Customer `json:"items"`
	Total      int64      `json:"total"`
	NextOffset int        `json:"next_offset"`
}

type ImportCustomersResponse struct {
	Total   int               `json:"total"`
	OkCount int               `json:"ok_count"`
	NgCount int               `json:"ng_count"`
	Results []ImportRowResult `json:"results"`
}

type ImportRowResult struct {
	Row     int     `json:"row"` // ヘッダを除いたデータ行番号（1始まり）
	Ok      bool    `json:"ok"`
	Created bool    `json:"created,omitempty"`
	Code    *string `json:"code,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// ===== Listing helpers =====

type ListQuery struct {
	Q      string // code / name の部分一致
	Sort   string // code | name | updated_at
	Order  string // asc | desc
	Limit  int
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func (q ListQuery) normalized() ListQuery {
	switch q.Sort {
	case "code", "name", "updated_at":
	default:
		q.Sort = "code"
	}
	if q.Order != "desc" {
		q.Order = "asc"
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}
