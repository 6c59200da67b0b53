package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
)

type RefreshTokenInput struct {
	RefreshToken string `validate:"required"`
}

type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshToken exchanges a valid refresh token for a new token pair. Refresh
// tokens are stateless JWTs signed with their own key, so rotation does not
// touch the database beyond confirming the user still exists.
func (s *Usecase) RefreshToken(ctx context.Context, in RefreshTokenInput) (*RefreshTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "RefreshToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	claims, err := s.jwtRefresh.Verify(in.RefreshToken)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, goerror.NewBusiness("Refresh token expired", goerror.CodeUnauthorized)
	}
	if err != nil {
		return nil, goerror.NewBusiness("Invalid refresh token", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, claims.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Invalid refresh token", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", claims.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	access, refresh, err := s.issueTokens(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &RefreshTokenOutput{AccessToken: access, RefreshToken: refresh}, nil
}
