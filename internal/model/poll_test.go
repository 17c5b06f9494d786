package model

import (
	"testing"
	"time"
)

// TestVotacion_IsOpenAt は受付中判定の境界条件を検証する。
// 期間は両端を含み、状態がACTIVAでなければ期間内でも受け付けない。
func TestVotacion_IsOpenAt(t *testing.T) {
	inicio := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		estado PollStatus
		at     time.Time
		want   bool
	}{
		{"期間内のACTIVA", PollStatusActive, inicio.AddDate(0, 0, 15), true},
		{"開始時刻ちょうど", PollStatusActive, inicio, true},
		{"終了時刻ちょうど", PollStatusActive, fin, true},
		{"開始前", PollStatusActive, inicio.Add(-time.Second), false},
		{"終了後", PollStatusActive, fin.Add(time.Second), false},
		{"期間内でもINACTIVA", PollStatusInactive, inicio.AddDate(0, 0, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Votacion{
				Estado:      tt.estado,
				FechaInicio: inicio,
				FechaFin:    fin,
			}
			if got := v.IsOpenAt(tt.at); got != tt.want {
				t.Errorf("IsOpenAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
