package model

import "time"

// PollStatus は投票イベントの公開状態を表す。
type PollStatus string

const (
	// PollStatusActive は投票受付中の状態。
	PollStatusActive PollStatus = "ACTIVA"
	// PollStatusInactive は投票を受け付けない状態。
	PollStatusInactive PollStatus = "INACTIVA"
)

// Votacion は1つの投票イベントを表す。
// 本サービスからは読み取り専用で、作成・更新は外部の管理プロセスが行う。
type Votacion struct {
	ID          int64
	Titulo      string
	Descripcion string
	FechaInicio time.Time
	FechaFin    time.Time
	Estado      PollStatus
}

// IsOpenAt は指定時刻に投票を受け付けているかどうかを返す。
// 状態がACTIVAかつ時刻が期間内の場合のみtrue。
func (v *Votacion) IsOpenAt(t time.Time) bool {
	return v.Estado == PollStatusActive && !t.Before(v.FechaInicio) && !t.After(v.FechaFin)
}

// Opcion は投票イベント内の選択肢を表す。
type Opcion struct {
	ID         int64
	VotacionID int64
	Nombre     string
	ImagenURL  string
}
