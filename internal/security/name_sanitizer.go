// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NameSanitizer は登録時にユーザーが入力する氏名フィールドをサニタイズし、
// 保存値にHTMLタグやスクリプトが紛れ込むことを防ぐ。
// bluemondayのStrictPolicy（全タグ除去）を使用する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NameSanitizer はユーザー入力文字列のサニタイズ機能のインターフェースを定義する。
type NameSanitizer interface {
	// Sanitize は入力から全てのHTMLタグを除去し、前後の空白を削った文字列を返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(input string) string
}

// nameSanitizer はNameSanitizerの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type nameSanitizer struct {
	policy *bluemonday.Policy
}

// NewNameSanitizer はNameSanitizerの新しいインスタンスを生成する。
// StrictPolicyは許可タグを一切持たず、全てのHTML要素を除去する。
func NewNameSanitizer() *nameSanitizer {
	return &nameSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力から全てのHTMLタグを除去し、前後の空白を削った文字列を返す。
func (s *nameSanitizer) Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(s.policy.Sanitize(input))
}

// compile-time interface check
var _ NameSanitizer = (*nameSanitizer)(nil)
