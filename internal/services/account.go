package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/levietphu/campuspark/internal/api"
	"github.com/levietphu/campuspark/internal/common"
	"github.com/levietphu/campuspark/internal/fallback"
	"github.com/levietphu/campuspark/internal/logging"
	"github.com/levietphu/campuspark/internal/models"
	"github.com/levietphu/campuspark/internal/session"
)

// Origin tells the caller whether query data came from the live backend or
// from the bundled demo dataset, so a presentation layer can indicate
// degraded mode.
type Origin int

const (
	OriginLive Origin = iota + 1
	OriginFallback
)

func (o Origin) String() string {
	switch o {
	case OriginLive:
		return "live"
	case OriginFallback:
		return "fallback"
	}
	return "unknown"
}

// AccountService serves profile and history queries and top-ups.
//
// Queries try the backend first and recover from any request failure by
// substituting demo data, failing with NotFound only when the student is
// absent from both sources. TopUp never falls back: money movement is
// either confirmed by the server or reported as a failure.
type AccountService interface {
	FetchProfile(ctx context.Context, studentID string) (*models.UserProfile, Origin, error)
	FetchHistory(ctx context.Context, studentID string) ([]models.HistoryRecord, Origin, error)
	TopUp(ctx context.Context, req models.TopUpRequest) (*models.TopUpReceipt, error)
	RegisterDemo(ctx context.Context, displayName, studentID, password string) error
}

type accountService struct {
	client   api.Client
	sessions *session.Store
	demo     *fallback.Dataset
	log      logging.Logger
}

func NewAccountService(client api.Client, sessions *session.Store, demo *fallback.Dataset, log logging.Logger) AccountService {
	return &accountService{
		client:   client,
		sessions: sessions,
		demo:     demo,
		log:      log.With("component", "account"),
	}
}

// resolveStudentID substitutes the signed-in student when id is empty.
func (s *accountService) resolveStudentID(ctx context.Context, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	sess, err := s.sessions.Load(ctx)
	if err != nil || sess == nil {
		return "", common.NewError(common.KindNotFound, "no student id given and no signed-in user")
	}
	return sess.Profile.StudentID, nil
}

func (s *accountService) FetchProfile(ctx context.Context, studentID string) (*models.UserProfile, Origin, error) {
	id, err := s.resolveStudentID(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}

	profile, err := s.client.Profile(ctx, id)
	if err == nil {
		return profile, OriginLive, nil
	}

	s.log.Warn(ctx, "profile fetch failed, using demo data", "student_id", id, "error", err.Error())

	acc := s.demo.FindByStudentID(id)
	if acc == nil {
		return nil, 0, common.NewError(common.KindNotFound, "student %s not found", id)
	}
	demoProfile := acc.Profile()
	return &demoProfile, OriginFallback, nil
}

func (s *accountService) FetchHistory(ctx context.Context, studentID string) ([]models.HistoryRecord, Origin, error) {
	id, err := s.resolveStudentID(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}

	records, err := s.client.History(ctx, id)
	if err == nil {
		return records, OriginLive, nil
	}

	s.log.Warn(ctx, "history fetch failed, using demo data", "student_id", id, "error", err.Error())

	if !s.demo.Exists(id) {
		return nil, 0, common.NewError(common.KindNotFound, "no history for student %s", id)
	}
	return s.demo.SampleHistoryFor(id), OriginFallback, nil
}

// TopUp validates before touching the network and surfaces every failure
// as a TopUpFailure; there is no offline path for money.
func (s *accountService) TopUp(ctx context.Context, req models.TopUpRequest) (*models.TopUpReceipt, error) {
	id, err := s.resolveStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	req.StudentID = id

	if !req.Amount.IsPositive() {
		return nil, common.NewError(common.KindTopUpFailure, "top-up amount must be positive, got %s", req.Amount)
	}
	if req.TransactionID == "" {
		req.TransactionID = uuid.NewString()
	}

	receipt, err := s.client.TopUp(ctx, req)
	if err != nil {
		return nil, &common.Error{
			Kind:    common.KindTopUpFailure,
			Message: err.Error(),
			Status:  common.ErrorStatus(err),
			Err:     err,
		}
	}
	return receipt, nil
}

// RegisterDemo appends an in-memory demo account with a generated RFID tag
// and a zero balance. The registration lives only until the process exits.
func (s *accountService) RegisterDemo(ctx context.Context, displayName, studentID, password string) error {
	displayName = strings.TrimSpace(displayName)
	studentID = strings.TrimSpace(studentID)
	if displayName == "" || studentID == "" || password == "" {
		return errors.New("name, student id and password are required")
	}

	suffix, err := common.MakeRandHexString(4)
	if err != nil {
		return err
	}

	return s.demo.Append(models.DemoAccount{
		StudentID:   studentID,
		Password:    password,
		DisplayName: displayName,
		RFIDTag:     "demo_" + suffix,
	})
}
