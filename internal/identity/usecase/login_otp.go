package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type LoginOTPInput struct {
	Email string `validate:"required,email"`
}

type LoginOTPOutput struct {
	Email string
}

// LoginOTP requests a one-time login code for an existing account. Unknown
// emails get the same successful response so the endpoint cannot be used to
// probe which addresses are registered.
func (s *Usecase) LoginOTP(ctx context.Context, in LoginOTPInput) (*LoginOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "login code requested for unknown email", "email", in.Email)
		return &LoginOTPOutput{Email: in.Email}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, codeHash, err := s.issueCode(ctx)
	if err != nil {
		return nil, err
	}

	expiresAt := s.clock.Now().Add(s.otpTTL())
	if err := s.sendOTPEmail(ctx, in.Email, code, s.otpTTL()); err != nil {
		slog.ErrorContext(ctx, "failed to send login code email", "email", in.Email, "error", err)
		return nil, goerror.NewDependencyFailure(err, "Failed to send login code")
	}

	if err := s.repoDB.SetUserOTP(ctx, user.ID, codeHash, expiresAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo set user otp", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOTPOutput{Email: in.Email}, nil
}
