package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"examdocs/internal/bundle"
	"examdocs/internal/model"
	"examdocs/internal/render"
	"examdocs/internal/roster"
	"examdocs/internal/session"
	"examdocs/internal/spreadsheet"
)

var tracer = otel.Tracer("examdocs/internal/service")

// CheckResult compares an uploaded student list with the rooms of a session.
type CheckResult struct {
	Students      int  `json:"students"`
	TotalCapacity int  `json:"total_capacity"`
	Rooms         int  `json:"rooms"`
	Matches       bool `json:"matches"`
}

// GenerateResult is a finished bundle. Bundle is nil when archiving is disabled or failed.
type GenerateResult struct {
	Archive  []byte
	Manifest *bundle.Manifest
	Bundle   *model.Bundle
}

// ExamService turns a session's rooms and an uploaded student list into exam documents.
type ExamService interface {
	Check(ctx context.Context, sessionID string, r io.Reader) (*CheckResult, error)
	Generate(ctx context.Context, sessionID string, info model.ExamInfo, r io.Reader) (*GenerateResult, error)
}

// ExamOptions configure an ExamService.
type ExamOptions struct {
	Font     *render.Font
	PageSize int
	// Rand supplies the shuffle source per generation. Defaults to roster.NewRand.
	Rand func() *rand.Rand
}

type examService struct {
	sessions *session.Store
	bundles  BundleService
	metrics  *Metrics
	opts     ExamOptions
	logger   *zap.Logger
	now      func() time.Time
}

// NewExamService wires the generation pipeline. bundles may be nil to skip archiving.
func NewExamService(sessions *session.Store, bundles BundleService, metrics *Metrics, opts ExamOptions, logger *zap.Logger) ExamService {
	if opts.Rand == nil {
		opts.Rand = roster.NewRand
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &examService{
		sessions: sessions,
		bundles:  bundles,
		metrics:  metrics,
		opts:     opts,
		logger:   logger.Named("exam"),
		now:      time.Now,
	}
}

func (s *examService) Check(ctx context.Context, sessionID string, r io.Reader) (*CheckResult, error) {
	_, span := tracer.Start(ctx, "ExamService.Check", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	students, err := spreadsheet.Read(r)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	res := &CheckResult{
		Students:      len(students),
		TotalCapacity: sess.TotalCapacity(),
		Rooms:         len(sess.Rooms()),
	}
	res.Matches = res.Students == res.TotalCapacity
	span.SetAttributes(
		attribute.Int("exam.students", res.Students),
		attribute.Int("exam.capacity", res.TotalCapacity),
	)
	return res, nil
}

func (s *examService) Generate(ctx context.Context, sessionID string, info model.ExamInfo, r io.Reader) (res *GenerateResult, err error) {
	ctx, span := tracer.Start(ctx, "ExamService.Generate", trace.WithSpanKind(trace.SpanKindInternal))
	start := s.now()
	students := 0
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		s.metrics.observe(outcome, students, s.now().Sub(start))
		span.End()
	}()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err = info.Validate(); err != nil {
		return nil, err
	}
	rooms := sess.Rooms()
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	list, err := spreadsheet.Read(r)
	if err != nil {
		return nil, err
	}

	assignment, err := roster.Assign(list, rooms, s.opts.Rand())
	if err != nil {
		return nil, err
	}
	posting := roster.Posting(assignment)
	span.SetAttributes(
		attribute.Int("exam.rooms", len(rooms)),
		attribute.Int("exam.students", len(list)),
	)

	var buf bytes.Buffer
	docs := render.New(info, render.Options{Font: s.opts.Font, PageSize: s.opts.PageSize})
	manifest, err := bundle.Build(&buf, docs, assignment, posting)
	if err != nil {
		return nil, fmt.Errorf("build bundle: %w", err)
	}
	students = len(list)

	res = &GenerateResult{Archive: buf.Bytes(), Manifest: manifest}
	if s.bundles != nil {
		rec, aerr := s.bundles.Archive(ctx, bytes.NewReader(res.Archive), int64(len(res.Archive)), model.Bundle{
			Course:       info.Course,
			ExamType:     info.ExamType,
			RoomCount:    len(rooms),
			StudentCount: len(list),
		})
		if aerr != nil {
			s.logger.Warn("bundle_archive_failed", zap.String("session_id", sessionID), zap.Error(aerr))
		} else {
			res.Bundle = rec
		}
	}

	s.logger.Info("bundle_generated",
		zap.String("session_id", sessionID),
		zap.Int("rooms", len(rooms)),
		zap.Int("students", len(list)),
		zap.Int("bytes", len(res.Archive)),
	)
	return res, nil
}
