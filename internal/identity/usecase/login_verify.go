package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type LoginVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,numeric,min=4,max=10"`
}

type LoginVerifyOutput struct {
	UserID       int64
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
}

func (s *Usecase) LoginVerify(ctx context.Context, in LoginVerifyInput) (*LoginVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("No account found for this email", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !user.HasActiveOTP() {
		return nil, goerror.NewBusiness("No login code found", goerror.CodeNotFound)
	}

	if s.clock.Now().After(user.OTPExpiresAt) {
		if err := s.repoDB.ClearUserOTP(ctx, user.ID); err != nil {
			slog.ErrorContext(ctx, "failed to repo clear user otp", "user_id", user.ID, "error", err)
		}
		return nil, goerror.NewBusiness("Login code expired", goerror.CodeInvalidFormat)
	}

	if !s.hmac.Verify(user.OTPHash, in.Code) {
		return nil, goerror.NewBusiness("Invalid login code", goerror.CodeInvalidFormat)
	}

	if err := s.repoDB.MarkUserVerified(ctx, user.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo mark user verified", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	access, refresh, err := s.issueTokens(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginVerifyOutput{
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
