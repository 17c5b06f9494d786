package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

// PostgresUserRepoはUserRepositoryインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

// PostgresPollRepoはPollRepositoryインターフェースを満たすことを検証
func TestPostgresPollRepo_ImplementsInterface(t *testing.T) {
	var _ PollRepository = (*PostgresPollRepo)(nil)
}

// PostgresVoteRepoはVoteRepositoryインターフェースを満たすことを検証
func TestPostgresVoteRepo_ImplementsInterface(t *testing.T) {
	var _ VoteRepository = (*PostgresVoteRepo)(nil)
}

// PostgresAuditRepoはAuditRepositoryインターフェースを満たすことを検証
func TestPostgresAuditRepo_ImplementsInterface(t *testing.T) {
	var _ AuditRepository = (*PostgresAuditRepo)(nil)
}

// 各コンストラクタが正しく初期化されることを検証
func TestConstructors_Initialize(t *testing.T) {
	if NewPostgresUserRepo(nil) == nil {
		t.Error("expected non-nil user repo")
	}
	if NewPostgresPollRepo(nil) == nil {
		t.Error("expected non-nil poll repo")
	}
	if NewPostgresVoteRepo(nil) == nil {
		t.Error("expected non-nil vote repo")
	}
	if NewPostgresAuditRepo(nil) == nil {
		t.Error("expected non-nil audit repo")
	}
}

// isUniqueViolationがPostgreSQLのエラーコード23505のみを検出することを検証
func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation",
			err:  &pq.Error{Code: "23505"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505"}),
			want: true,
		},
		{
			name: "foreign key violation",
			err:  &pq.Error{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation = %v, want %v", got, tt.want)
			}
		})
	}
}

// 重複系のセンチネルエラーが互いに区別できることを検証
func TestSentinelErrors_AreDistinct(t *testing.T) {
	if errors.Is(ErrCedulaTaken, ErrDuplicateVote) {
		t.Error("ErrCedulaTaken and ErrDuplicateVote must be distinct")
	}
}
