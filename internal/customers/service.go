package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	ulid "github.com/oklog/ulid/v2"
)

// ===== Error model =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) *APIError { return &APIError{Code: CodeConflict, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		case CodeConflict:
			return 409
		default:
			return 500
		}
	}
	return 500
}

// mapDBError MySQL のエラー番号を API エラーへ
func mapDBError(err error, code string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound("customer not found: " + code)
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return ErrConflict("customer code already exists: " + code)
	}
	return err
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context, q ListQuery) (ListCustomersResponse, error) {
	q = q.normalized()
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return ListCustomersResponse{}, err
	}
	next := q.Offset + q.Limit
	if next >= int(total) {
		next = 0
	}
	return ListCustomersResponse{Items: items, Total: total, NextOffset: next}, nil
}

func (s *Service) Get(ctx context.Context, code string) (*Customer, error) {
	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, mapDBError(err, code)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in CreateCustomerRequest) (*Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalid("name is required")
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = "C-" + ulid.Make().String()
	}
	c, err := s.repo.Insert(ctx, Customer{
		Code:       code,
		Name:       strings.TrimSpace(in.Name),
		PostalCode: in.PostalCode,
		Address:    in.Address,
		Phone:      in.Phone,
		Fax:        in.Fax,
		Email:      in.Email,
	})
	if err != nil {
		return nil, mapDBError(err, code)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, code string, in UpdateCustomerRequest) (*Customer, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, ErrInvalid("name must not be empty")
	}
	c, err := s.repo.Update(ctx, code, in)
	if err != nil {
		return nil, mapDBError(err, code)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return mapDBError(err, code)
	}
	return nil
}

// Export 全件を Shift-JIS CSV で w へ書き出す
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	list, err := s.repo.All(ctx)
	if err != nil {
		return 0, err
	}
	if err := WriteCSV(w, list); err != nil {
		return 0, ErrInternal("csv write failed: " + err.Error())
	}
	return len(list), nil
}

// Import 1トランザクションで upsert。不正行は結果に記録してスキップし、DB エラーなら全体を ROLLBACK。
func (s *Service) Import(ctx context.Context, r io.Reader, enc string) (ImportCustomersResponse, error) {
	rows, err := ReadCSV(r, enc)
	if err != nil {
		return ImportCustomersResponse{}, ErrInvalid(err.Error())
	}

	res := ImportCustomersResponse{Total: len(rows), Results: make([]ImportRowResult, 0, len(rows))}
	err = s.repo.WithTx(ctx, func(tx Repository) error {
		for _, row := range rows {
			code := row.Customer.Code
			result := ImportRowResult{Row: row.Line}
			if code != "" {
				result.Code = &code
			}
			if row.Err != nil {
				msg := row.Err.Error()
				result.Error = &msg
				res.NgCount++
				res.Results = append(res.Results, result)
				continue
			}
			created, err := tx.Upsert(ctx, row.Customer)
			if err != nil {
				return fmt.Errorf("row %d: %w", row.Line, err)
			}
			result.Ok = true
			result.Created = created
			res.OkCount++
			res.Results = append(res.Results, result)
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] 顧客CSV取込失敗: %v", err)
		return ImportCustomersResponse{}, err
	}
	log.Printf("[INFO] 顧客CSV取込: total=%d ok=%d ng=%d", res.Total, res.OkCount, res.NgCount)
	return res, nil
}
