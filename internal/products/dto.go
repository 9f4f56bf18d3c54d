package products

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Code      string          `json:"code"` // 空なら自動採番
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes"`
}

type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	Unit      *string          `json:"unit,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}

type ListProductsResponse struct {
	Items      []Product `json:"items"`
	Total      int64     `json:"total"`
	NextOffset int       `json:"next_offset"`
}

type ImportProductsResponse struct {
	Total   int               `json:"total"`
	OkCount int               `json:"ok_count"`
	NgCount int               `json:"ng_count"`
	Results []ImportRowResult `json:"results"`
}

type ImportRowResult struct {
	Row     int     `json:"row"`
	Ok      bool    `json:"ok"`
	Created bool    `json:"created,omitempty"`
	Code    *string `json:"code,omitempty"`
	Error   *string `json:"error,omitempty"`
}

type ListQuery struct {
	Q      string
	Sort   string // code | name | unit_price | updated_at
	Order  string
	Limit  int
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func (q ListQuery) normalized() ListQuery {
	switch q.Sort {
	case "code", "name", "unit_price", "updated_at":
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
