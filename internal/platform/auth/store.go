package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

/*
CREATE TABLE users (
  username      VARCHAR(64)  NOT NULL PRIMARY KEY,
  password_hash VARCHAR(255) NOT NULL,
  role          VARCHAR(16)  NOT NULL DEFAULT 'staff',
  is_disabled   TINYINT(1)   NOT NULL DEFAULT 0,
  created_at    DATETIME(6)  NOT NULL
);
*/

// User 画面にログインする営業担当者
type User struct {
	Username     string
	PasswordHash string
	Role         string
	IsDisabled   bool
	CreatedAt    time.Time
}

type UserStore interface {
	Get(ctx context.Context, username string) (*User, error) // 無ければ nil, nil
	Create(ctx context.Context, u *User) error
	Delete(ctx context.Context, username string) (int64, error)
	Rename(ctx context.Context, oldName, newName string) (int64, error)
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Get(ctx context.Context, username string) (*User, error) {
	const q = `
SELECT username, password_hash, role, is_disabled, created_at
FROM users
WHERE username = ?
LIMIT 1`
	var u User
	err := s.db.QueryRowContext(ctx, q, username).Scan(&u.Username, &u.PasswordHash, &u.Role, &u.IsDisabled, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) Create(ctx context.Context, u *User) error {
	const q = `INSERT INTO users (username, password_hash, role, is_disabled, created_at) VALUES (?, ?, ?, 0, NOW(6))`
	_, err := s.db.ExecContext(ctx, q, u.Username, u.PasswordHash, u.Role)
	return err
}

func (s *Store) Delete(ctx context.Context, username string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Rename(ctx context.Context, oldName, newName string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET username = ? WHERE username = ?`, newName, oldName)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
