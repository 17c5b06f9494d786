package model

import "time"

// Voto は投じられた1票を表す。
// (Cedula, VotacionID) の組はストレージ層のユニーク制約で一意に保たれる。
type Voto struct {
	ID         string
	Cedula     string
	VotacionID int64
	OpcionID   int64
	CreatedAt  time.Time
}

// AuditEvent は監査ログのイベント種別を表す。
// 値はそのまま監査テーブルに記録される支持者向けの表記。
type AuditEvent string

const (
	// AuditEventDuplicate は重複投票の試行。
	AuditEventDuplicate AuditEvent = "Intento de voto duplicado"
	// AuditEventBlocked はブロック済みユーザーの投票試行。
	AuditEventBlocked AuditEvent = "Intento de voto bloqueado"
	// AuditEventSuccess は正常に記録された投票。
	AuditEventSuccess AuditEvent = "Voto registrado"
)

// AuditEntry は投票試行の結果を記録する監査ログの1行を表す。
// 追記専用で、更新・削除されることはない。
type AuditEntry struct {
	ID         string
	Cedula     string
	VotacionID int64
	OpcionID   int64
	Evento     AuditEvent
	CreatedAt  time.Time
}

// Resultado は集計結果の1行（選択肢ごとの得票数）を表す。
type Resultado struct {
	Nombre string
	Votos  int
}
