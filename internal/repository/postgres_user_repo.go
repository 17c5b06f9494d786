package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/hitoshi/urna/internal/model"
)

// uniqueViolation はPostgreSQLのunique_violationエラーコード。
const uniqueViolation = "23505"

// isUniqueViolation はエラーがユニーク制約違反かどうかを判定する。
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// Create はユーザーを作成する。cedula重複時はErrCedulaTakenを返す。
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, cedula, nombre, apellido, password_hash, estado, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Cedula, user.Nombre, user.Apellido, user.PasswordHash,
		user.Estado, user.CreatedAt, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrCedulaTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByCedula は指定cedulaのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByCedula(ctx context.Context, cedula string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, cedula, nombre, apellido, password_hash, estado, created_at, updated_at
		 FROM users WHERE cedula = $1`,
		cedula,
	).Scan(&user.ID, &user.Cedula, &user.Nombre, &user.Apellido,
		&user.PasswordHash, &user.Estado, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by cedula: %w", err)
	}

	return user, nil
}

// IsBlocked は指定cedulaのユーザーがブロック状態かどうかを返す。
// 未登録のcedulaに対してはfalseを返す。
func (r *PostgresUserRepo) IsBlocked(ctx context.Context, cedula string) (bool, error) {
	var blocked bool
	err := r.db.QueryRowContext(ctx,
		`SELECT estado = $2 FROM users WHERE cedula = $1`,
		cedula, model.UserStatusBlocked,
	).Scan(&blocked)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user status: %w", err)
	}

	return blocked, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
