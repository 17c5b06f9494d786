// Package model はドメインモデルを定義する。
package model

import "time"

// UserStatus はユーザーの投票資格状態を表す。
type UserStatus string

const (
	// UserStatusActive は通常状態。投票可能。
	UserStatusActive UserStatus = "ACTIVO"
	// UserStatusBlocked は管理側でブロックされた状態。投票不可。
	// 状態の変更は外部の管理プロセスが行い、本サービスは参照のみ。
	UserStatusBlocked UserStatus = "BLOQUEADO"
)

// User は登録済みの投票者を表す。
// Cedulaは国民ID（一意）で、ログインおよびトークンのクレームに使用される。
type User struct {
	ID           string
	Cedula       string
	Nombre       string
	Apellido     string
	PasswordHash string
	Estado       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBlocked はユーザーがブロック状態かどうかを返す。
func (u *User) IsBlocked() bool {
	return u.Estado == UserStatusBlocked
}
