package products

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"SALES-backend/internal/platform/db"
)

/*
CREATE TABLE products (
  product_id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  code       VARCHAR(32)   NOT NULL UNIQUE,
  name       VARCHAR(255)  NOT NULL,
  unit       VARCHAR(16)   NOT NULL DEFAULT '',
  unit_price DECIMAL(14,2) NOT NULL DEFAULT 0,
  notes      VARCHAR(255)  NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);
*/

type Repository interface {
	List(ctx context.Context, q ListQuery) ([]Product, int64, error)
	All(ctx context.Context) ([]Product, error)
	GetByCode(ctx context.Context, code string) (*Product, error)
	Insert(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, code string, in UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, code string) error
	Upsert(ctx context.Context, p Product) (created bool, err error)
	WithTx(ctx context.Context, fn func(r Repository) error) error
}

type Store struct {
	conn *sql.DB
	q    db.DBTX
}

func NewStore(conn *sql.DB) *Store { return &Store{conn: conn, q: conn} }

const selectCols = `product_id, code, name, unit, unit_price, notes, created_at, updated_at`

func scanProduct(sc interface{ Scan(...any) error }) (Product, error) {
	var p Product
	err := sc.Scan(&p.ID, &p.Code, &p.Name, &p.Unit, &p.UnitPrice, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (s *Store) WithTx(ctx context.Context, fn func(r Repository) error) error {
	if s.conn == nil {
		return fn(s)
	}
	return db.RunInTx(ctx, s.conn, func(tx db.DBTX) error {
		return fn(&Store{q: tx})
	})
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Product, error) {
	rows, err := s.q.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (s *Store) List(ctx context.Context, q ListQuery) ([]Product, int64, error) {
	q = q.normalized()

	where := " WHERE 1=1"
	args := []any{}
	if kw := strings.TrimSpace(q.Q); kw != "" {
		where += " AND (code LIKE ? OR name LIKE ?)"
		like := "%" + escapeLike(kw) + "%"
		args = append(args, like, like)
	}

	var total int64
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf("SELECT %s FROM products%s ORDER BY %s %s, product_id ASC LIMIT ? OFFSET ?",
		selectCols, where, q.Sort, strings.ToUpper(q.Order))
	list, err := s.query(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *Store) All(ctx context.Context) ([]Product, error) {
	return s.query(ctx, "SELECT "+selectCols+" FROM products ORDER BY code ASC")
}

func (s *Store) GetByCode(ctx context.Context, code string) (*Product, error) {
	p, err := scanProduct(s.q.QueryRowContext(ctx, "SELECT "+selectCols+" FROM products WHERE code = ?", code))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) Insert(ctx context.Context, p Product) (*Product, error) {
	const q = `INSERT INTO products (code, name, unit, unit_price, notes) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.q.ExecContext(ctx, q, p.Code, p.Name, p.Unit, p.UnitPrice, p.Notes); err != nil {
		return nil, err
	}
	return s.GetByCode(ctx, p.Code)
}

func (s *Store) Update(ctx context.Context, code string, in UpdateProductRequest) (*Product, error) {
	sets := []string{}
	args := []any{}
	if in.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *in.Name)
	}
	if in.Unit != nil {
		sets = append(sets, "unit = ?")
		args = append(args, *in.Unit)
	}
	if in.UnitPrice != nil {
		sets = append(sets, "unit_price = ?")
		args = append(args, *in.UnitPrice)
	}
	if in.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *in.Notes)
	}
	if len(sets) == 0 {
		return s.GetByCode(ctx, code)
	}
	args = append(args, code)
	q := fmt.Sprintf(`UPDATE products SET %s WHERE code = ?`, strings.Join(sets, ", "))
	if _, err := s.q.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return s.GetByCode(ctx, code)
}

func (s *Store) Delete(ctx context.Context, code string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM products WHERE code = ?", code)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) Upsert(ctx context.Context, p Product) (bool, error) {
	const q = `
	INSERT INTO products (code, name, unit, unit_price, notes)
	VALUES (?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	  name = VALUES(name), unit = VALUES(unit), unit_price = VALUES(unit_price), notes = VALUES(notes)`
	res, err := s.q.ExecContext(ctx, q, p.Code, p.Name, p.Unit, p.UnitPrice, p.Notes)
	if err != nil {
		return false, err
	}
	// MySQL: 新規=1, 更新=2, 変更なし=0
	aff, _ := res.RowsAffected()
	return aff == 1, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
