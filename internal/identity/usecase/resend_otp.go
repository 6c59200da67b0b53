package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/idempotency"
)

type ResendOTPInput struct {
	Email string `validate:"required,email"`
}

type ResendOTPOutput struct {
	Email     string
	ExpiresAt time.Time
}

func (s *Usecase) ResendOTP(ctx context.Context, in ResendOTPInput) (*ResendOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "ResendOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cooldown := s.cfg.GetSecond("modules.identity.otp_resend_cooldown_seconds")
	if cooldown > 0 {
		state, err := s.idemp.Acquire(ctx, "otp_resend:"+in.Email, cooldown)
		if err != nil {
			slog.ErrorContext(ctx, "failed to acquire resend cooldown", "email", in.Email, "error", err)
			return nil, goerror.NewServer(err)
		}
		if state != idempotency.StateNone {
			return nil, goerror.NewBusiness("Please wait before requesting another code", goerror.CodeTooManyRequest)
		}
	}

	now := s.clock.Now()

	pend, ok := s.pending.Get(in.Email)
	if ok && pend.Expired(now) {
		s.pending.Delete(in.Email)
		ok = false
	}

	if ok && pend.State == entity.PendingStateCodeVerified {
		return nil, goerror.NewBusiness("Code already verified", goerror.CodeConflict)
	}

	if ok {
		return s.resendPending(ctx, in.Email)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("No signup found for this email", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Verified is the single source of truth for a finished account, stale
	// otp fields from an abandoned login do not reopen the signup flow.
	if user.Verified {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}

	code, codeHash, err := s.issueCode(ctx)
	if err != nil {
		return nil, err
	}

	expiresAt := now.Add(s.otpTTL())
	if err := s.sendOTPEmail(ctx, in.Email, code, s.otpTTL()); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code email", "email", in.Email, "error", err)
		return nil, goerror.NewDependencyFailure(err, "Failed to send verification code")
	}

	if err := s.repoDB.SetUserOTP(ctx, user.ID, codeHash, expiresAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo set user otp", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ResendOTPOutput{Email: in.Email, ExpiresAt: expiresAt}, nil
}

func (s *Usecase) resendPending(ctx context.Context, email string) (*ResendOTPOutput, error) {
	code, codeHash, err := s.issueCode(ctx)
	if err != nil {
		return nil, err
	}

	expiresAt := s.clock.Now().Add(s.otpTTL())
	if err := s.sendOTPEmail(ctx, email, code, s.otpTTL()); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code email", "email", email, "error", err)
		return nil, goerror.NewDependencyFailure(err, "Failed to send verification code")
	}

	// The send runs outside the entry's lock, so a concurrent verification may
	// have progressed the entry in the meantime. Commit under the lock and keep
	// the fresh code only while the entry is still waiting on one.
	err = s.pending.Mutate(email, func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
		if cur == nil || cur.State != entity.PendingStateAwaitingCode {
			return cur, goerror.NewBusiness("Code already verified", goerror.CodeConflict)
		}
		next := *cur
		next.OTPHash = codeHash
		next.ExpiresAt = expiresAt
		return &next, nil
	})
	if err != nil {
		return nil, err
	}

	return &ResendOTPOutput{Email: email, ExpiresAt: expiresAt}, nil
}

func (s *Usecase) issueCode(ctx context.Context) (string, string, error) {
	code, err := s.otpGen.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return "", "", goerror.NewServer(err)
	}

	codeHash, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash verification code", "error", err)
		return "", "", goerror.NewServer(err)
	}

	return code, string(codeHash), nil
}
