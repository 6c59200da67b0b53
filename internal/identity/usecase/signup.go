package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type SignupInput struct {
	Email string `validate:"required,email"`
}

type SignupOutput struct {
	Email     string
	ExpiresAt time.Time
}

func (s *Usecase) Signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil && user.Verified {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.otpGen.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return nil, goerror.NewServer(err)
	}

	codeHash, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash verification code", "error", err)
		return nil, goerror.NewServer(err)
	}

	expiresAt := s.clock.Now().Add(s.otpTTL())

	// The email goes out before anything is recorded. A dispatch failure must
	// leave no trace, otherwise the user holds a pending signup with a code
	// that never reached them.
	if err := s.sendOTPEmail(ctx, in.Email, code, s.otpTTL()); err != nil {
		slog.ErrorContext(ctx, "failed to send verification code email", "email", in.Email, "error", err)
		return nil, goerror.NewDependencyFailure(err, "Failed to send verification code")
	}

	s.pending.Put(in.Email, entity.PendingSignup{
		OTPHash:   string(codeHash),
		ExpiresAt: expiresAt,
		State:     entity.PendingStateAwaitingCode,
	})

	return &SignupOutput{Email: in.Email, ExpiresAt: expiresAt}, nil
}
