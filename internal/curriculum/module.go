package curriculum

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/studytrack/internal/curriculum/inbound"
	"github.com/shandysiswandi/studytrack/internal/curriculum/outbound/db"
	"github.com/shandysiswandi/studytrack/internal/curriculum/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/router"
	"github.com/shandysiswandi/studytrack/internal/pkg/uid"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repo,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
