package usecase_test

import (
	"bytes"
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/studytrack/internal/identity/entity"
	"github.com/shandysiswandi/studytrack/internal/identity/outbound/pending"
	"github.com/shandysiswandi/studytrack/internal/identity/usecase"
	"github.com/shandysiswandi/studytrack/internal/pkg/config"
	"github.com/shandysiswandi/studytrack/internal/pkg/goerror"
	"github.com/shandysiswandi/studytrack/internal/pkg/goroutine"
	"github.com/shandysiswandi/studytrack/internal/pkg/hash"
	"github.com/shandysiswandi/studytrack/internal/pkg/idempotency"
	"github.com/shandysiswandi/studytrack/internal/pkg/instrument"
	"github.com/shandysiswandi/studytrack/internal/pkg/jwt"
	"github.com/shandysiswandi/studytrack/internal/pkg/mail"
	"github.com/shandysiswandi/studytrack/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
modules:
  identity:
    otp_ttl_minutes: 5
    otp_resend_cooldown_seconds: 60
    sweep_interval_minutes: 5
`

type fakeDB struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[string]*entity.User)}
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeDB) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateUser(_ context.Context, in entity.NewUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[in.Email]; ok {
		return goerror.ErrConflict
	}
	f.users[in.Email] = &entity.User{
		ID:           in.ID,
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: in.PasswordHash,
		Verified:     in.Verified,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (f *fakeDB) SetUserOTP(_ context.Context, id int64, otpHash string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == id {
			u.OTPHash = otpHash
			u.OTPExpiresAt = expiresAt
			return nil
		}
	}
	return goerror.ErrNotFound
}

func (f *fakeDB) ClearUserOTP(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == id {
			u.OTPHash = ""
			u.OTPExpiresAt = time.Time{}
			return nil
		}
	}
	return nil
}

func (f *fakeDB) MarkUserVerified(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == id {
			u.Verified = true
			u.OTPHash = ""
			u.OTPExpiresAt = time.Time{}
			return nil
		}
	}
	return goerror.ErrNotFound
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	fail error

	// hook runs while a send is in flight, before the message is recorded
	hook func()
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	f.mu.Lock()
	hook := f.hook
	fail := f.fail
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if fail != nil {
		return fail
	}

	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	return nil
}

func (f *fakeMailer) Close() error { return nil }

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeMQ struct {
	mu     sync.Mutex
	events []usecase.UserRegisteredEvent
}

func (f *fakeMQ) PublishUserRegistered(_ context.Context, msg usecase.UserRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, msg)
	return nil
}

type fakeIdemp struct {
	mu     sync.Mutex
	locked map[string]bool
}

func newFakeIdemp() *fakeIdemp {
	return &fakeIdemp{locked: make(map[string]bool)}
}

func (f *fakeIdemp) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.locked[key] {
		return idempotency.StateInProgress, nil
	}
	f.locked[key] = true
	return idempotency.StateNone, nil
}

func (f *fakeIdemp) MarkCompleted(_ context.Context, _ string, _ time.Duration) error { return nil }
func (f *fakeIdemp) MarkFailed(_ context.Context, _ string, _ time.Duration) error   { return nil }

func (f *fakeIdemp) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	return fn(ctx)
}

type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fakeOTP struct{ code string }

func (f fakeOTP) Generate() (string, error) { return f.code, nil }

type seqID struct {
	mu   sync.Mutex
	next int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

type staticUUID struct{}

func (staticUUID) Generate() string { return "test-jti-" + strconv.FormatInt(time.Now().UnixNano(), 36) }

type fixture struct {
	uc      *usecase.Usecase
	db      *fakeDB
	pending *pending.Store
	mailer  *fakeMailer
	mq      *fakeMQ
	idemp   *fakeIdemp
	clock   *fixedClock
	hmac    hash.Hash
	routine *goroutine.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	clk := &fixedClock{t: time.Now().Truncate(time.Second)}
	secret := bytes.Repeat([]byte("s"), 64)

	jwtAccess, err := jwt.NewHS512(jwt.Config{
		Secret:     secret,
		Issuer:     "studytrack",
		Audiences:  []string{"studytrack"},
		TTLMinutes: 15 * time.Minute,
		Clock:      clk,
		UUID:       staticUUID{},
	})
	require.NoError(t, err)

	jwtRefresh, err := jwt.NewHS512(jwt.Config{
		Secret:     bytes.Repeat([]byte("r"), 64),
		Issuer:     "studytrack",
		Audiences:  []string{"studytrack"},
		TTLMinutes: 7 * 24 * time.Hour,
		Clock:      clk,
		UUID:       staticUUID{},
	})
	require.NoError(t, err)

	fix := &fixture{
		db:      newFakeDB(),
		pending: pending.NewStore(),
		mailer:  &fakeMailer{},
		mq:      &fakeMQ{},
		idemp:   newFakeIdemp(),
		clock:   clk,
		hmac:    hash.NewHMACSHA256("test-otp-secret"),
		routine: goroutine.NewManager(4),
	}

	fix.uc = usecase.New(usecase.Dependency{
		RepoDB:        fix.db,
		RepoMessaging: fix.mq,
		Pending:       fix.pending,
		Idempotency:   fix.idemp,
		Validator:     v,
		Config:        cfg,
		HMAC:          fix.hmac,
		Bcrypt:        hash.NewBcrypt(4, "test-pepper"),
		OTP:           fakeOTP{code: "123456"},
		UID:           &seqID{},
		Clock:         clk,
		JWTAccess:     jwtAccess,
		JWTRefresh:    jwtRefresh,
		Mailer:        fix.mailer,
		Instrument:    instrument.NewNoop(),
		Goroutine:     fix.routine,
	})

	return fix
}

func requireCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code())
}
