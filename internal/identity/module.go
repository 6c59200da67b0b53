package identity

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/studytrack/internal/identity/inbound"
	"github.com/shandysiswandi/studytrack/internal/identity/outbound/db"
	"github.com/shandysiswandi/studytrack/internal/identity/outbound/mq"
	"github.com/shandysiswandi/studytrack/internal/identity/outbound/pending"
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/clock"
	"github.com/shandysiswandi/studytrack/internal/pkg/config"
	"github.com/shandysiswandi/studytrack/internal/pkg/goroutine"
	"github.com/shandysiswandi/studytrack/internal/pkg/hash"
	"github.com/shandysiswandi/studytrack/internal/pkg/idempotency"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
	"github.com/shandysiswandi/studytrack/internal/pkg/mail"
	"github.com/shandysiswandi/studytrack/internal/pkg/messaging"
	"github.com/shandysiswandi/studytrack/internal/pkg/otp"
	"github.com/shandysiswandi/studytrack/internal/pkg/router"
	"github.com/shandysiswandi/studytrack/internal/pkg/uid"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Mailer      mail.Mail                  `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	HMAC        hash.Hash                  `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	OTP         otp.Generator              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWTAccess   jwt.JWT                    `validate:"required"`
	JWTRefresh  jwt.JWT                    `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	pendingStore := pending.NewStore()

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Pending:       pendingStore,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		Bcrypt:        dep.Bcrypt,
		OTP:           dep.OTP,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWTAccess:     dep.JWTAccess,
		JWTRefresh:    dep.JWTRefresh,
		Mailer:        dep.Mailer,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	uc.StartExpirySweeper(ctx)

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
