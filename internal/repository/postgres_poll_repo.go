package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hitoshi/urna/internal/model"
)

// PostgresPollRepo はPostgreSQLを使用した投票イベントリポジトリ。
type PostgresPollRepo struct {
	db *sql.DB
}

// NewPostgresPollRepo はPostgresPollRepoを生成する。
func NewPostgresPollRepo(db *sql.DB) *PostgresPollRepo {
	return &PostgresPollRepo{db: db}
}

// ListActive は指定時刻に受付中の投票イベント一覧を返す。
func (r *PostgresPollRepo) ListActive(ctx context.Context, now time.Time) ([]*model.Votacion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, titulo, descripcion, fecha_inicio, fecha_fin, estado
		 FROM votaciones
		 WHERE estado = $1 AND fecha_inicio <= $2 AND fecha_fin >= $2
		 ORDER BY fecha_inicio`,
		model.PollStatusActive, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active votaciones: %w", err)
	}
	defer rows.Close()

	var votaciones []*model.Votacion
	for rows.Next() {
		v := &model.Votacion{}
		if err := rows.Scan(&v.ID, &v.Titulo, &v.Descripcion, &v.FechaInicio, &v.FechaFin, &v.Estado); err != nil {
			return nil, fmt.Errorf("failed to scan votacion: %w", err)
		}
		votaciones = append(votaciones, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votaciones: %w", err)
	}

	return votaciones, nil
}

// ListOptions は指定投票イベントの選択肢一覧を返す。
func (r *PostgresPollRepo) ListOptions(ctx context.Context, votacionID int64) ([]*model.Opcion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, votacion_id, nombre, COALESCE(imagen_url, '')
		 FROM opciones
		 WHERE votacion_id = $1
		 ORDER BY id`,
		votacionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list opciones: %w", err)
	}
	defer rows.Close()

	var opciones []*model.Opcion
	for rows.Next() {
		o := &model.Opcion{}
		if err := rows.Scan(&o.ID, &o.VotacionID, &o.Nombre, &o.ImagenURL); err != nil {
			return nil, fmt.Errorf("failed to scan opcion: %w", err)
		}
		opciones = append(opciones, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate opciones: %w", err)
	}

	return opciones, nil
}

// OptionBelongsToPoll は選択肢が指定投票イベントに属するかどうかを返す。
func (r *PostgresPollRepo) OptionBelongsToPoll(ctx context.Context, votacionID, opcionID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM opciones WHERE id = $1 AND votacion_id = $2)`,
		opcionID, votacionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check opcion ownership: %w", err)
	}
	return exists, nil
}

// compile-time interface check
var _ PollRepository = (*PostgresPollRepo)(nil)
