package customers

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
)

// memRepo Repository のメモリ実装
type memRepo struct {
	rows     map[string]Customer
	nextID   uint64
	failCode string // この code の upsert でエラーを返す
}

func newMemRepo(list ...Customer) *memRepo {
	m := &memRepo{rows: map[string]Customer{}}
	for _, c := range list {
		m.nextID++
		c.ID = m.nextID
		m.rows[c.Code] = c
	}
	return m
}

func (m *memRepo) sorted() []Customer {
	out := make([]Customer, 0, len(m.rows))
	for _, c := range m.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (m *memRepo) List(_ context.Context, q ListQuery) ([]Customer, int64, error) {
	var hit []Customer
	for _, c := range m.sorted() {
		if q.Q == "" || strings.Contains(c.Code, q.Q) || strings.Contains(c.Name, q.Q) {
			hit = append(hit, c)
		}
	}
	total := int64(len(hit))
	if q.Offset >= len(hit) {
		return []Customer{}, total, nil
	}
	end := min(q.Offset+q.Limit, len(hit))
	return hit[q.Offset:end], total, nil
}

func (m *memRepo) All(context.Context) ([]Customer, error) { return m.sorted(), nil }

func (m *memRepo) GetByCode(_ context.Context, code string) (*Customer, error) {
	c, ok := m.rows[code]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (m *memRepo) Insert(ctx context.Context, c Customer) (*Customer, error) {
	if _, ok := m.rows[c.Code]; ok {
		return nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.UpdatedAt = c.CreatedAt
	m.rows[c.Code] = c
	return m.GetByCode(ctx, c.Code)
}

func (m *memRepo) Update(ctx context.Context, code string, in UpdateCustomerRequest) (*Customer, error) {
	c, ok := m.rows[code]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	m.rows[code] = c
	return m.GetByCode(ctx, code)
}

func (m *memRepo) Delete(_ context.Context, code string) error {
	if _, ok := m.rows[code]; !ok {
		return sql.ErrNoRows
	}
	delete(m.rows, code)
	return nil
}

func (m *memRepo) Upsert(_ context.Context, c Customer) (bool, error) {
	if c.Code == m.failCode {
		return false, errors.New("boom")
	}
	old, exists := m.rows[c.Code]
	if exists {
		c.ID = old.ID
	} else {
		m.nextID++
		c.ID = m.nextID
	}
	m.rows[c.Code] = c
	return !exists, nil
}

// WithTx 失敗時はスナップショットへ戻す
func (m *memRepo) WithTx(_ context.Context, fn func(r Repository) error) error {
	snap := make(map[string]Customer, len(m.rows))
	for k, v := range m.rows {
		snap[k] = v
	}
	if err := fn(m); err != nil {
		m.rows = snap
		return err
	}
	return nil
}
