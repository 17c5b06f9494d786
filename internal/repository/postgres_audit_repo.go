package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/urna/internal/model"
)

// PostgresAuditRepo はPostgreSQLを使用した監査ログリポジトリ。
// 追記のみを行い、既存行の更新・削除は提供しない。
type PostgresAuditRepo struct {
	db *sql.DB
}

// NewPostgresAuditRepo はPostgresAuditRepoを生成する。
func NewPostgresAuditRepo(db *sql.DB) *PostgresAuditRepo {
	return &PostgresAuditRepo{db: db}
}

// Append は監査ログに1行追記する。
func (r *PostgresAuditRepo) Append(ctx context.Context, entry *model.AuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO auditoria_votos (id, cedula, votacion_id, opcion_id, evento, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Cedula, entry.VotacionID, entry.OpcionID, entry.Evento, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// compile-time interface check
var _ AuditRepository = (*PostgresAuditRepo)(nil)
