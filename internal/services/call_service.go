package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"call2fa/internal/models"
	"call2fa/internal/repositories"
)

const callStatusQueued = "queued"

type CallService struct {
	repo repositories.CallRepository
	now  func() time.Time
}

func NewCallService(repo repositories.CallRepository) *CallService {
	return &CallService{repo: repo, now: time.Now}
}

// Call registers a plain call.
func (s *CallService) Call(ctx context.Context, login string, req models.CallRequest) (*models.Call, error) {
	call := s.newCall(ctx, login, models.ModePlain, req.PhoneNumber)
	call.CallbackURL = req.CallbackURL
	return s.save(ctx, call)
}

// CallViaPool registers a last digits call. The caller number is drawn for the
// pool and its trailing four or six digits become the verification code.
func (s *CallService) CallViaPool(ctx context.Context, login, poolID string, sixDigits bool, req models.PoolCallRequest) (*models.Call, error) {
	mode, digits := models.ModeLastDigits, 4
	if sixDigits {
		mode, digits = models.ModeSixDigits, 6
	}
	call := s.newCall(ctx, login, mode, req.PhoneNumber)
	call.PoolID = poolID
	call.Number = poolNumber()
	call.Code = call.Number[len(call.Number)-digits:]
	return s.save(ctx, call)
}

// CallWithCode registers a call that dictates code in lang.
func (s *CallService) CallWithCode(ctx context.Context, login string, req models.CodeCallRequest) (*models.Call, error) {
	call := s.newCall(ctx, login, models.ModeCode, req.PhoneNumber)
	call.Code = req.Code
	call.Lang = req.Lang
	return s.save(ctx, call)
}

// Info returns a call owned by login. Calls of other accounts are reported as missing.
func (s *CallService) Info(ctx context.Context, login, id string) (*models.Call, error) {
	call, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if call.Login != login {
		return nil, repositories.ErrNotFound
	}
	return call, nil
}

func (s *CallService) newCall(ctx context.Context, login string, mode models.CallMode, phone string) *models.Call {
	return &models.Call{
		ID:          s.repo.NextID(ctx),
		Login:       login,
		Mode:        mode,
		PhoneNumber: phone,
		Status:      callStatusQueued,
		CreatedAt:   s.now().UTC(),
	}
}

func (s *CallService) save(ctx context.Context, call *models.Call) (*models.Call, error) {
	if err := s.repo.Create(ctx, call); err != nil {
		return nil, fmt.Errorf("failed to store call: %w", err)
	}
	return call, nil
}

// poolNumber fabricates a caller number in the +38044 range.
func poolNumber() string {
	return fmt.Sprintf("+38044%07d", rand.Intn(10_000_000))
}
