package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/pkg/clock"
	"github.com/shandysiswandi/studytrack/internal/pkg/config"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/goroutine"
	"github.com/shandysiswandi/studytrack/internal/pkg/hash"
	"github.com/shandysiswandi/studytrack/internal/pkg/idempotency"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
	"github.com/shandysiswandi/studytrack/internal/pkg/mail"
	"github.com/shandysiswandi/studytrack/internal/pkg/otp"
	"github.com/shandysiswandi/studytrack/internal/pkg/uid"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	UserID int64
	Email  string
	Name   string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)

	CreateUser(ctx context.Context, in entity.NewUser) error

	SetUserOTP(ctx context.Context, id int64, otpHash string, expiresAt time.Time) error
	ClearUserOTP(ctx context.Context, id int64) error
	MarkUserVerified(ctx context.Context, id int64) error
}

type pendingStore interface {
	Put(email string, p entity.PendingSignup)
	Get(email string) (entity.PendingSignup, bool)
	Mutate(email string, fn func(cur *entity.PendingSignup) (*entity.PendingSignup, error)) error
	Delete(email string)
	SweepExpired(now time.Time) int
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	pending       pendingStore
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	bcrypt        hash.Hash
	otpGen        otp.Generator
	uid           uid.NumberID
	clock         clock.Clocker
	jwtAccess     jwt.JWT
	jwtRefresh    jwt.JWT
	mailer        mail.Mail
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Pending       pendingStore
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	Bcrypt        hash.Hash
	OTP           otp.Generator
	UID           uid.NumberID
	Clock         clock.Clocker
	JWTAccess     jwt.JWT
	JWTRefresh    jwt.JWT
	Mailer        mail.Mail
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		pending:       dep.Pending,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		bcrypt:        dep.Bcrypt,
		otpGen:        dep.OTP,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwtAccess:     dep.JWTAccess,
		jwtRefresh:    dep.JWTRefresh,
		mailer:        dep.Mailer,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return ttl
}

func (s *Usecase) issueTokens(ctx context.Context, userID int64, email string) (string, string, error) {
	access, err := s.jwtAccess.Generate(userID, email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", userID, "error", err)
		return "", "", goerror.NewServer(err)
	}

	refresh, err := s.jwtRefresh.Generate(userID, email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate refresh jwt token", "user_id", userID, "error", err)
		return "", "", goerror.NewServer(err)
	}

	return access, refresh, nil
}

// nameFromEmail derives a display name from the local part of an email address.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	return strings.TrimSpace(local)
}
