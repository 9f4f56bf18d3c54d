package company

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"SALES-backend/internal/deliverynote"
)

// ===== Error model =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string         { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError     { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFoundAPI(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string) *APIError    { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return http.StatusBadRequest
		case CodeNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service { return &Service{store: store, now: time.Now} }

func (s *Service) Get() (*Profile, error) {
	p, err := s.store.Load()
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFoundAPI("company profile is not registered")
	}
	if err != nil {
		return nil, ErrInternal(err.Error())
	}
	return p, nil
}

func (s *Service) Update(in UpdateProfileRequest) (*Profile, error) {
	p, err := s.store.Update(func(p *Profile) error {
		in.apply(p)
		if strings.TrimSpace(p.Name) == "" {
			return ErrInvalid("name is required")
		}
		p.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		var api *APIError
		if errors.As(err, &api) {
			return nil, err
		}
		return nil, ErrInternal(err.Error())
	}
	return p, nil
}

// CompanyInfo 納品書用。未登録なら nil, nil（呼び出し側で MISSING_COMPANY_INFO になる）
func (s *Service) CompanyInfo(_ context.Context) (*deliverynote.CompanyInfo, error) {
	p, err := s.store.Load()
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	info := p.toCompanyInfo()
	return &info, nil
}
