// Package vote は投票受付のビジネスロジックを提供する。
package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/urna/internal/model"
	"github.com/hitoshi/urna/internal/repository"
)

// Recorder は投票結果のメトリクス記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type Recorder interface {
	RecordVoteAccepted()
	RecordVoteRejected(reason string)
}

// nopRecorder はメトリクス未設定時のno-op実装。
type nopRecorder struct{}

func (nopRecorder) RecordVoteAccepted()             {}
func (nopRecorder) RecordVoteRejected(reason string) {}

// Service は投票受付の一連の検査と記録を実行する。
type Service struct {
	voteRepo  repository.VoteRepository
	userRepo  repository.UserRepository
	pollRepo  repository.PollRepository
	auditRepo repository.AuditRepository
	recorder  Recorder
}

// NewService はServiceを生成する。recorderがnilの場合はメトリクスを記録しない。
func NewService(
	voteRepo repository.VoteRepository,
	userRepo repository.UserRepository,
	pollRepo repository.PollRepository,
	auditRepo repository.AuditRepository,
	recorder Recorder,
) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		voteRepo:  voteRepo,
		userRepo:  userRepo,
		pollRepo:  pollRepo,
		auditRepo: auditRepo,
		recorder:  recorder,
	}
}

// Submit は1回の投票試行を処理する。
//
// 手順:
//  1. 重複チェック（高速パス）。既に投票済みなら監査ログに記録して拒否。
//  2. ブロックチェック。ブロック済みユーザーなら監査ログに記録して拒否。
//  3. 選択肢の所属チェック。指定の投票イベントに属さない選択肢は拒否。
//  4. 票の挿入。(cedula, votacion)のユニーク制約違反は重複として扱う。
//     並行リクエストが手順1を同時に通過しても、ここで1票だけが通る。
//  5. 成功の監査ログ追記。票は確定済みのため、この追記の失敗は拒否理由にならない。
//
// 各手順は独立したステートメントで、横断するトランザクションは張らない。
func (s *Service) Submit(ctx context.Context, cedula string, votacionID, opcionID int64) error {
	// 1. 重複チェック
	exists, err := s.voteRepo.Exists(ctx, cedula, votacionID)
	if err != nil {
		return fmt.Errorf("failed to check existing vote: %w", err)
	}
	if exists {
		return s.rejectDuplicate(ctx, cedula, votacionID, opcionID)
	}

	// 2. ブロックチェック
	blocked, err := s.userRepo.IsBlocked(ctx, cedula)
	if err != nil {
		return fmt.Errorf("failed to check user status: %w", err)
	}
	if blocked {
		s.appendAudit(ctx, cedula, votacionID, opcionID, model.AuditEventBlocked)
		s.recorder.RecordVoteRejected("blocked")
		return model.NewUserBlockedError()
	}

	// 3. 選択肢の所属チェック
	belongs, err := s.pollRepo.OptionBelongsToPoll(ctx, votacionID, opcionID)
	if err != nil {
		return fmt.Errorf("failed to check opcion: %w", err)
	}
	if !belongs {
		s.recorder.RecordVoteRejected("invalid_option")
		return model.NewValidationError("Opción inválida para esta votación")
	}

	// 4. 票の挿入
	voto := &model.Voto{
		ID:         uuid.New().String(),
		Cedula:     cedula,
		VotacionID: votacionID,
		OpcionID:   opcionID,
		CreatedAt:  time.Now(),
	}
	if err := s.voteRepo.Create(ctx, voto); err != nil {
		if errors.Is(err, repository.ErrDuplicateVote) {
			// 事前チェックを並行リクエストに追い越されたケース。制約が正本。
			return s.rejectDuplicate(ctx, cedula, votacionID, opcionID)
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	// 5. 成功の監査ログ
	s.appendAudit(ctx, cedula, votacionID, opcionID, model.AuditEventSuccess)
	s.recorder.RecordVoteAccepted()

	slog.Info("vote recorded",
		slog.String("cedula", cedula),
		slog.Int64("votacion_id", votacionID),
		slog.Int64("opcion_id", opcionID),
	)

	return nil
}

// rejectDuplicate は重複投票の監査ログを追記し、重複エラーを返す。
func (s *Service) rejectDuplicate(ctx context.Context, cedula string, votacionID, opcionID int64) error {
	s.appendAudit(ctx, cedula, votacionID, opcionID, model.AuditEventDuplicate)
	s.recorder.RecordVoteRejected("duplicate")
	return model.NewDuplicateVoteError()
}

// appendAudit は監査ログを追記する。追記の失敗は投票結果を変えないためログのみに記録する。
func (s *Service) appendAudit(ctx context.Context, cedula string, votacionID, opcionID int64, evento model.AuditEvent) {
	entry := &model.AuditEntry{
		ID:         uuid.New().String(),
		Cedula:     cedula,
		VotacionID: votacionID,
		OpcionID:   opcionID,
		Evento:     evento,
		CreatedAt:  time.Now(),
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		slog.Error("failed to append audit entry",
			slog.String("error", err.Error()),
			slog.String("cedula", cedula),
			slog.Int64("votacion_id", votacionID),
			slog.String("evento", string(evento)),
		)
	}
}
