package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"Travel_Mate/internal/model"
	"Travel_Mate/internal/pkg"
	"Travel_Mate/internal/repository/mysql"
)

type reportRepo interface {
	Create(ctx context.Context, report *model.Report, reportedUserID uint64) error
	DeleteByUserAndPost(ctx context.Context, userID, postID, reportedUserID uint64) error
	ListByUser(ctx context.Context, userID uint64) ([]mysql.ReportRow, error)
	UpdateReportFalse(ctx context.Context, reportID uint64, state int) error
	List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error)
}

type reportPostRepo interface {
	FindByID(ctx context.Context, id uint64) (*model.Post, error)
}

type ReportService struct {
	repo  reportRepo
	posts reportPostRepo
}

func NewReportService() *ReportService {
	return &ReportService{
		repo:  &mysql.ReportRepository{DB: mysql.DB},
		posts: &mysql.PostRepository{DB: mysql.DB},
	}
}

var validReportTypes = map[string]bool{"R1": true, "R2": true, "R3": true, "R4": true}

// Add 举报帖子。不能举报自己的帖子，重复举报返回 ErrDuplicate。
func (s *ReportService) Add(ctx context.Context, userID, postID uint64, reportType, detail string) error {
	if !validReportTypes[reportType] {
		return fmt.Errorf("%w: reportType", pkg.ErrInvalid)
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID == userID {
		return fmt.Errorf("%w: cannot report own post", pkg.ErrInvalid)
	}
	report := &model.Report{
		UserID:       userID,
		PostID:       postID,
		ReportType:   reportType,
		ReportDetail: detail,
	}
	return s.repo.Create(ctx, report, post.UserID)
}

// Cancel 取消举报
func (s *ReportService) Cancel(ctx context.Context, userID, postID uint64) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	return s.repo.DeleteByUserAndPost(ctx, userID, postID, post.UserID)
}

func (s *ReportService) ListMine(ctx context.Context, userID uint64) ([]mysql.ReportRow, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Resolve 管理端更新举报处理状态
func (s *ReportService) Resolve(ctx context.Context, reportID uint64, state int) error {
	switch state {
	case model.ReportPending, model.ReportFalse, model.ReportResolved:
	default:
		return fmt.Errorf("%w: reportFalse", pkg.ErrInvalid)
	}
	return s.repo.UpdateReportFalse(ctx, reportID, state)
}

// List 管理端举报列表
func (s *ReportService) List(ctx context.Context, q pkg.PageQuery) (*pkg.PageResult, error) {
	return s.repo.List(ctx, q)
}

type outboxRepo interface {
	List(ctx context.Context, batchSize int) ([]model.ReportOutbox, error)
	SuccessUpdate(ctx context.Context, id uint64) error
	RetryUpdate(ctx context.Context, id uint64) error
	ResetFailed(ctx context.Context, maxRetry int) error
}

type Sender func(ctx context.Context, ob *model.ReportOutbox) error

// OutboxRelayer 轮询举报事件表，把未投递的事件交给 kafka。
// 失败的事件隔 requeueEvery 个周期重新入队，超过 maxRetry 次的放弃。
type OutboxRelayer struct {
	repo         outboxRepo
	batchSize    int
	interval     time.Duration
	sender       Sender
	maxRetry     int
	requeueEvery int
	ticks        int
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:         &mysql.OutboxRepository{DB: mysql.DB},
		batchSize:    200,
		interval:     time.Second,
		sender:       sender,
		maxRetry:     5,
		requeueEvery: 30,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.tick(ctx)
		}
	}
}

func (r *OutboxRelayer) tick(ctx context.Context) {
	r.ticks++
	if r.requeueEvery > 0 && r.ticks%r.requeueEvery == 0 {
		if err := r.repo.ResetFailed(ctx, r.maxRetry); err != nil {
			log.Printf("outbox requeue err: %v", err)
		}
	}
	r.drainOnce(ctx)
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err := r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender 把 outbox 事件投到 kafka
func KafkaSender(producer *pkg.ModerationProducer) Sender {
	return func(ctx context.Context, ob *model.ReportOutbox) error {
		return producer.Publish(ctx, pkg.ModerationEvent{
			ReportID: ob.ReportID,
			Kind:     ob.EventType,
			Payload:  []byte(ob.Payload),
		})
	}
}

// LogSender 本地联调用的占位 sender
func LogSender(ctx context.Context, ob *model.ReportOutbox) error {
	log.Printf("OUTBOX SEND type=%s report=%d payload=%s", ob.EventType, ob.ReportID, ob.Payload)
	return nil
}
