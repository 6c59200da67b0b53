package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
)

type CompleteSignupInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	Name     string `validate:"omitempty,min=2,max=100,alphaspace"`
}

type CompleteSignupOutput struct {
	UserID       int64
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
}

func (s *Usecase) CompleteSignup(ctx context.Context, in CompleteSignupInput) (*CompleteSignupOutput, error) {
	ctx, span := s.startSpan(ctx, "CompleteSignup")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()

	// Consume the verified entry under its lock. Only one of N concurrent
	// completions can observe and remove it; the rest fall through to the
	// account checks below. An entry still awaiting its code is left alone.
	consumed := false
	awaitingCode := false
	err := s.pending.Mutate(in.Email, func(cur *entity.PendingSignup) (*entity.PendingSignup, error) {
		if cur == nil {
			return nil, nil
		}
		if cur.Expired(now) {
			return nil, goerror.NewBusiness("Verification code expired", goerror.CodeInvalidFormat)
		}
		if cur.State != entity.PendingStateCodeVerified {
			awaitingCode = true
			return cur, nil
		}

		consumed = true
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	if awaitingCode {
		return nil, goerror.NewBusiness("Please verify OTP first", goerror.CodeInvalidFormat)
	}

	if !consumed {
		user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
		if err == nil && user.Verified {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		if err != nil && !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
			return nil, goerror.NewServer(err)
		}

		return nil, goerror.NewBusiness("Please verify OTP first", goerror.CodeInvalidFormat)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	name := in.Name
	if name == "" {
		name = nameFromEmail(in.Email)
	}

	newUser := entity.NewUser{
		ID:           s.uid.Generate(),
		Email:        in.Email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Verified:     true,
	}

	// The unique index on email is the arbiter when two completions race past
	// the in-memory store, for example after both signed up on different
	// instances of this process.
	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID: newUser.ID,
		Email:  newUser.Email,
		Name:   newUser.Name,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registered", "user_id", newUser.ID, "error", err)
	}

	access, refresh, err := s.issueTokens(ctx, newUser.ID, newUser.Email)
	if err != nil {
		return nil, err
	}

	return &CompleteSignupOutput{
		UserID:       newUser.ID,
		Email:        newUser.Email,
		Name:         newUser.Name,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
