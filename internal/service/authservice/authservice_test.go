package authservice

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/pg"
	"github.com/dkhamitov/helpmate/pkg/auth"
)

type mocks struct {
	users     *MockUserRepo
	helpers   *MockHelperRepo
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:     NewMockUserRepo(ctrl),
		helpers:   NewMockHelperRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	service := New(m.users, m.helpers, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		role          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Register requester",
			role: auth.RoleRequester,
			prepareMock: func() {
				passthroughTx(m)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.Equal(t, "alice", u.Login)
						assert.Equal(t, auth.RoleRequester, u.Role)
						assert.NotEqual(t, "secret", u.PasswordHash)
						return u, nil
					},
				)
			},
		},
		{
			name: "Register helper provisions a trial profile",
			role: auth.RoleHelper,
			prepareMock: func() {
				passthroughTx(m)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil },
				)
				m.helpers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.HelperProfile) error {
						assert.True(t, p.IsActive)
						assert.Equal(t, "trial", p.SubscriptionStatus)
						assert.Equal(t, "rookie", p.Grade)
						assert.Equal(t, "unverified", p.VerificationStatus)
						assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), *p.TrialEndsAt, time.Minute)
						return nil
					},
				)
			},
		},
		{
			name: "Duplicate login",
			role: auth.RoleRequester,
			prepareMock: func() {
				passthroughTx(m)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:          "Unknown role",
			role:          "operator",
			prepareMock:   func() {},
			expectedError: ErrUnknownRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "alice", "secret", tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEmpty(t, user.ID)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)

	hashSvc := &auth.HashService{}
	hash, err := hashSvc.HashPassword("secret")
	assert.NoError(t, err)

	stored := &domain.User{ID: "user-1", Login: "alice", PasswordHash: hash, Role: auth.RoleRequester}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Correct credentials",
			password: "secret",
			prepareMock: func() {
				m.users.EXPECT().FindByLogin(gomock.Any(), "alice").Return(stored, nil)
			},
		},
		{
			name:     "Wrong password",
			password: "not-secret",
			prepareMock: func() {
				m.users.EXPECT().FindByLogin(gomock.Any(), "alice").Return(stored, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Unknown login",
			password: "secret",
			prepareMock: func() {
				m.users.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "alice", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", user.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken("user-1", auth.RoleHelper)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	jwtSvc := &auth.JWTService{}
	claims, err := jwtSvc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, auth.RoleHelper, claims.Role)
}
