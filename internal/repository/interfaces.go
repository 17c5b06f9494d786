// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hitoshi/urna/internal/model"
)

// ErrCedulaTaken は既に登録済みのcedulaで登録しようとした場合に返される。
// usersテーブルのユニーク制約違反から変換される。
var ErrCedulaTaken = errors.New("cedula already registered")

// ErrDuplicateVote は同一(cedula, votacion)の2票目を挿入しようとした場合に返される。
// votosテーブルのユニーク制約違反から変換される。重複判定の正本はこの制約であり、
// 事前の存在チェックは並行リクエスト下では追い越されうる高速パスにすぎない。
var ErrDuplicateVote = errors.New("vote already cast for this votacion")

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成する。cedula重複時はErrCedulaTakenを返す。
	Create(ctx context.Context, user *model.User) error

	// FindByCedula は指定cedulaのユーザーを取得する。見つからない場合はnilを返す。
	FindByCedula(ctx context.Context, cedula string) (*model.User, error)

	// IsBlocked は指定cedulaのユーザーがブロック状態かどうかを返す。
	// 未登録のcedulaに対してはfalseを返す。
	IsBlocked(ctx context.Context, cedula string) (bool, error)
}

// PollRepository は投票イベントと選択肢の読み取りインターフェース。
// 投票イベントの作成・更新は外部の管理プロセスが行うため、書き込みメソッドは持たない。
type PollRepository interface {
	// ListActive は指定時刻に受付中の投票イベント一覧を返す。
	// 状態がACTIVAかつ fecha_inicio <= now <= fecha_fin のものに限る。
	ListActive(ctx context.Context, now time.Time) ([]*model.Votacion, error)

	// ListOptions は指定投票イベントの選択肢一覧を返す。
	ListOptions(ctx context.Context, votacionID int64) ([]*model.Opcion, error)

	// OptionBelongsToPoll は選択肢が指定投票イベントに属するかどうかを返す。
	OptionBelongsToPoll(ctx context.Context, votacionID, opcionID int64) (bool, error)
}

// VoteRepository は投票データの永続化インターフェース。
type VoteRepository interface {
	// Exists は指定(cedula, votacion)の票が既に存在するかどうかを返す。
	Exists(ctx context.Context, cedula string, votacionID int64) (bool, error)

	// Create は票を挿入する。(cedula, votacion)重複時はErrDuplicateVoteを返す。
	Create(ctx context.Context, voto *model.Voto) error

	// Tally は指定投票イベントの選択肢ごとの得票数を返す。
	// 出力はnombre昇順で安定している。
	Tally(ctx context.Context, votacionID int64) ([]*model.Resultado, error)

	// ListByVotacion は指定投票イベントの票のopcion_idを投票順に返す。
	ListByVotacion(ctx context.Context, votacionID int64) ([]int64, error)
}

// AuditRepository は監査ログの永続化インターフェース。
// 追記専用で、更新・削除メソッドは意図的に存在しない。
type AuditRepository interface {
	// Append は監査ログに1行追記する。
	Append(ctx context.Context, entry *model.AuditEntry) error
}
