package customers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"SALES-backend/internal/platform/db"
)

/*
CREATE TABLE customers (
  customer_id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  code        VARCHAR(32)  NOT NULL UNIQUE,
  name        VARCHAR(255) NOT NULL,
  postal_code VARCHAR(16)  NOT NULL DEFAULT '',
  address     VARCHAR(255) NOT NULL DEFAULT '',
  phone       VARCHAR(32)  NOT NULL DEFAULT '',
  fax         VARCHAR(32)  NOT NULL DEFAULT '',
  email       VARCHAR(255) NOT NULL DEFAULT '',
  created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);
*/

// Repository サービスが使う永続化操作。テストではメモリ実装に差し替える。
type Repository interface {
	List(ctx context.Context, q ListQuery) ([]Customer, int64, error)
	All(ctx context.Context) ([]Customer, error)
	GetByCode(ctx context.Context, code string) (*Customer, error)
	Insert(ctx context.Context, c Customer) (*Customer, error)
	Update(ctx context.Context, code string, in UpdateCustomerRequest) (*Customer, error)
	Delete(ctx context.Context, code string) error
	// Upsert code が既存なら上書き。created は新規作成時 true
	Upsert(ctx context.Context, c Customer) (created bool, err error)
	WithTx(ctx context.Context, fn func(r Repository) error) error
}

type Store struct {
	conn *sql.DB
	q    db.DBTX
}

func NewStore(conn *sql.DB) *Store { return &Store{conn: conn, q: conn} }

const selectCols = `customer_id, code, name, postal_code, address, phone, fax, email, created_at, updated_at`

func scanCustomer(sc interface{ Scan(...any) error }) (Customer, error) {
	var c Customer
	err := sc.Scan(&c.ID, &c.Code, &c.Name, &c.PostalCode, &c.Address, &c.Phone, &c.Fax, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *Store) WithTx(ctx context.Context, fn func(r Repository) error) error {
	if s.conn == nil {
		// 既に Tx 内
		return fn(s)
	}
	return db.RunInTx(ctx, s.conn, func(tx db.DBTX) error {
		return fn(&Store{q: tx})
	})
}

func (s *Store) List(ctx context.Context, q ListQuery) ([]Customer, int64, error) {
	q = q.normalized()

	where := " WHERE 1=1"
	args := []any{}
	if kw := strings.TrimSpace(q.Q); kw != "" {
		where += " AND (code LIKE ? OR name LIKE ?)"
		like := "%" + escapeLike(kw) + "%"
		args = append(args, like, like)
	}

	var total int64
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// ソート列はホワイトリスト済み（normalized）
	query := fmt.Sprintf("SELECT %s FROM customers%s ORDER BY %s %s, customer_id ASC LIMIT ? OFFSET ?",
		selectCols, where, q.Sort, strings.ToUpper(q.Order))
	rows, err := s.q.QueryContext(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func (s *Store) All(ctx context.Context) ([]Customer, error) {
	rows, err := s.q.QueryContext(ctx, "SELECT "+selectCols+" FROM customers ORDER BY code ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (s *Store) GetByCode(ctx context.Context, code string) (*Customer, error) {
	c, err := scanCustomer(s.q.QueryRowContext(ctx, "SELECT "+selectCols+" FROM customers WHERE code = ?", code))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) Insert(ctx context.Context, c Customer) (*Customer, error) {
	const q = `
	INSERT INTO customers (code, name, postal_code, address, phone, fax, email)
	VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.q.ExecContext(ctx, q, c.Code, c.Name, c.PostalCode, c.Address, c.Phone, c.Fax, c.Email); err != nil {
		return nil, err
	}
	return s.GetByCode(ctx, c.Code)
}

func (s *Store) Update(ctx context.Context, code string, in UpdateCustomerRequest) (*Customer, error) {
	// 動的アップデート
	sets := []string{}
	args := []any{}
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	add("name", in.Name)
	add("postal_code", in.PostalCode)
	add("address", in.Address)
	add("phone", in.Phone)
	add("fax", in.Fax)
	add("email", in.Email)
	if len(sets) == 0 {
		return s.GetByCode(ctx, code)
	}

	args = append(args, code)
	q := fmt.Sprintf(`UPDATE customers SET %s WHERE code = ?`, strings.Join(sets, ", "))
	if _, err := s.q.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	// 値が変わらない UPDATE は affected=0 になるので存在確認は SELECT で行う
	return s.GetByCode(ctx, code)
}

func (s *Store) Delete(ctx context.Context, code string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM customers WHERE code = ?", code)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) Upsert(ctx context.Context, c Customer) (bool, error) {
	const q = `
	INSERT INTO customers (code, name, postal_code, address, phone, fax, email)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	  name = VALUES(name), postal_code = VALUES(postal_code), address = VALUES(address),
	  phone = VALUES(phone), fax = VALUES(fax), email = VALUES(email)`
	res, err := s.q.ExecContext(ctx, q, c.Code, c.Name, c.PostalCode, c.Address, c.Phone, c.Fax, c.Email)
	if err != nil {
		return false, err
	}
	// MySQL: 新規=1, 更新=2, 変更なし=0
	aff, _ := res.RowsAffected()
	return aff == 1, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
