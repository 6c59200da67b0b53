package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/studytrack/internal/curriculum"
	"github.com/shandysiswandi/studytrack/internal/identity"
	"github.com/shandysiswandi/studytrack/internal/notification"
	"github.com/shandysiswandi/studytrack/internal/study"
	"github.com/shandysiswandi/studytrack/internal/visitor"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(a.ctx, identity.Dependency{
			DBConn:      a.dbConn,
			Goroutine:   a.goroutine,
			Router:      a.router,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Mailer:      a.mail,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			HMAC:        a.hmac,
			Bcrypt:      a.bcrypt,
			Clock:       a.clock,
			OTP:         a.otp,
			Validator:   a.validator,
			JWTAccess:   a.jwtAccess,
			JWTRefresh:  a.jwtRefresh,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.study.enabled") {
		if err := study.New(study.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module study", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.curriculum.enabled") {
		if err := curriculum.New(curriculum.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module curriculum", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.visitor.enabled") {
		if err := visitor.New(visitor.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uuid,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module visitor", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Mail:       a.mail,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
