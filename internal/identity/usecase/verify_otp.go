package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,numeric,min=4,max=10"`
}

type VerifyOTPOutput struct {
	Email string
}

func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()

	// A pending signup takes precedence over any persisted account. The whole
	// check-and-transition runs under the entry's lock so two concurrent
	// verifications cannot both succeed against different observations.
	pendingHandled := false
	err := s.pending.Mutate(in.Email, func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
		if cur == nil {
			return nil, nil
		}
		pendingHandled = true

		if cur.Expired(now) {
			return nil, goerror.NewBusiness("Verification code expired", goerror.CodeInvalidFormat)
		}
		if !s.hmac.Verify(cur.OTPHash, in.Code) {
			return cur, goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidFormat)
		}

		cur.State = entity.PendingStateCodeVerified
		return cur, nil
	})
	if pendingHandled {
		if err != nil {
			return nil, err
		}
		return &VerifyOTPOutput{Email: in.Email}, nil
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("No signup found for this email", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	// A verified account always gets the idempotent success, even while it
	// holds a live login code; those are consumed by login-verify instead.
	if user.Verified {
		return &VerifyOTPOutput{Email: in.Email}, nil
	}

	if !user.HasActiveOTP() {
		return nil, goerror.NewBusiness("No verification code found", goerror.CodeNotFound)
	}

	if now.After(user.OTPExpiresAt) {
		if err := s.repoDB.ClearUserOTP(ctx, user.ID); err != nil {
			slog.ErrorContext(ctx, "failed to repo clear user otp", "user_id", user.ID, "error", err)
		}
		return nil, goerror.NewBusiness("Verification code expired", goerror.CodeInvalidFormat)
	}

	if !s.hmac.Verify(user.OTPHash, in.Code) {
		return nil, goerror.NewBusiness("Invalid verification code", goerror.CodeInvalidFormat)
	}

	if err := s.repoDB.MarkUserVerified(ctx, user.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo mark user verified", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{Email: in.Email}, nil
}
