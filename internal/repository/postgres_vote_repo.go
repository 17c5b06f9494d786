package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/urna/internal/model"
)

// PostgresVoteRepo はPostgreSQLを使用した投票リポジトリ。
type PostgresVoteRepo struct {
	db *sql.DB
}

// NewPostgresVoteRepo はPostgresVoteRepoを生成する。
func NewPostgresVoteRepo(db *sql.DB) *PostgresVoteRepo {
	return &PostgresVoteRepo{db: db}
}

// Exists は指定(cedula, votacion)の票が既に存在するかどうかを返す。
func (r *PostgresVoteRepo) Exists(ctx context.Context, cedula string, votacionID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM votos WHERE cedula = $1 AND votacion_id = $2)`,
		cedula, votacionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}

// Create は票を挿入する。(cedula, votacion)のユニーク制約違反は
// ErrDuplicateVoteに変換される。並行リクエストが事前チェックを同時に通過した場合、
// この制約が1票だけを通す。
func (r *PostgresVoteRepo) Create(ctx context.Context, voto *model.Voto) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO votos (id, cedula, votacion_id, opcion_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		voto.ID, voto.Cedula, voto.VotacionID, voto.OpcionID, voto.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateVote
	}
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// Tally は指定投票イベントの選択肢ごとの得票数をnombre昇順で返す。
func (r *PostgresVoteRepo) Tally(ctx context.Context, votacionID int64) ([]*model.Resultado, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.nombre, COUNT(*) AS votos
		 FROM votos v
		 JOIN opciones o ON v.opcion_id = o.id
		 WHERE v.votacion_id = $1
		 GROUP BY o.nombre
		 ORDER BY o.nombre`,
		votacionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tally votes: %w", err)
	}
	defer rows.Close()

	var resultados []*model.Resultado
	for rows.Next() {
		res := &model.Resultado{}
		if err := rows.Scan(&res.Nombre, &res.Votos); err != nil {
			return nil, fmt.Errorf("failed to scan resultado: %w", err)
		}
		resultados = append(resultados, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resultados: %w", err)
	}

	return resultados, nil
}

// ListByVotacion は指定投票イベントの票のopcion_idを投票順に返す。
func (r *PostgresVoteRepo) ListByVotacion(ctx context.Context, votacionID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT opcion_id FROM votos WHERE votacion_id = $1 ORDER BY created_at`,
		votacionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var opcionIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan vote row: %w", err)
		}
		opcionIDs = append(opcionIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote rows: %w", err)
	}

	return opcionIDs, nil
}

// compile-time interface check
var _ VoteRepository = (*PostgresVoteRepo)(nil)
