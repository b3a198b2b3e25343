package applications

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/applicationservice"
	"github.com/dkhamitov/helpmate/internal/service/errandservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
)

func NewMock(t *testing.T) (*ApplicationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, body, userID string, params map[string]string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, url, nil)
	} else {
		r = httptest.NewRequest(method, url, bytes.NewBufferString(body))
	}

	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return r.WithContext(ctx)
}

func pendingApplication() *domain.ErrandApplication {
	return &domain.ErrandApplication{
		ID:        "app-1",
		ErrandID:  "e-1",
		HelperID:  "helper-1",
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestApplyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Application created",
			body: `{"message":"I'm two blocks away","proposed_price":16000}`,
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), "e-1", "user-2", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, message *string, proposedPrice *int64) (*domain.ErrandApplication, error) {
						assert.Equal(t, "I'm two blocks away", *message)
						assert.Equal(t, int64(16000), *proposedPrice)
						return pendingApplication(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Empty body is a bare application",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), "e-1", "user-2", nil, nil).
					Return(pendingApplication(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Errand not found",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), "e-1", "user-2", nil, nil).
					Return(nil, errandservice.ErrErrandNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Helper not eligible",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), "e-1", "user-2", nil, nil).
					Return(nil, applicationservice.ErrHelperIneligible)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Own errand",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), "e-1", "user-2", nil, nil).
					Return(nil, applicationservice.ErrSelfApplication)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Duplicate application",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), "e-1", "user-2", nil, nil).
					Return(nil, applicationservice.ErrDuplicateApplication)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Errand no longer open",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Apply(gomock.Any(), "e-1", "user-2", nil, nil).
					Return(nil, applicationservice.ErrNotOpen)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/errands/e-1/applications", tt.body, "user-2", map[string]string{"errandID": "e-1"})
			w := httptest.NewRecorder()

			handler.Apply(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAcceptHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Application accepted",
			prepareMock: func() {
				accepted := pendingApplication()
				accepted.Status = "accepted"
				service.EXPECT().
					Accept(gomock.Any(), "e-1", "app-1", "req-1").
					Return(accepted, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Lost the match race",
			prepareMock: func() {
				service.EXPECT().
					Accept(gomock.Any(), "e-1", "app-1", "req-1").
					Return(nil, errandservice.ErrAlreadyMatched)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Caller is not the requester",
			prepareMock: func() {
				service.EXPECT().
					Accept(gomock.Any(), "e-1", "app-1", "req-1").
					Return(nil, applicationservice.ErrNotRequester)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Application belongs to another errand",
			prepareMock: func() {
				service.EXPECT().
					Accept(gomock.Any(), "e-1", "app-1", "req-1").
					Return(nil, applicationservice.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/errands/e-1/applications/app-1/accept", "", "req-1",
				map[string]string{"errandID": "e-1", "applicationID": "app-1"})
			w := httptest.NewRecorder()

			handler.Accept(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ApplicationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "accepted", body.Status)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Application withdrawn",
			prepareMock: func() {
				withdrawn := pendingApplication()
				withdrawn.Status = "withdrawn"
				service.EXPECT().
					Withdraw(gomock.Any(), "app-1", "user-2").
					Return(withdrawn, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Application already decided",
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), "app-1", "user-2").
					Return(nil, applicationservice.ErrApplicationNotPending)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/applications/app-1/withdraw", "", "user-2",
				map[string]string{"applicationID": "app-1"})
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListByErrandHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Applications listed", func(t *testing.T) {
		service.EXPECT().
			ListByErrand(gomock.Any(), "e-1", "req-1").
			Return([]domain.ErrandApplication{*pendingApplication()}, nil)

		r := newRequest(http.MethodGet, "/api/errands/e-1/applications", "", "req-1", map[string]string{"errandID": "e-1"})
		w := httptest.NewRecorder()

		handler.ListByErrand(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.ApplicationResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, "app-1", body[0].ID)
	})

	t.Run("Only the requester may list", func(t *testing.T) {
		service.EXPECT().
			ListByErrand(gomock.Any(), "e-1", "user-2").
			Return(nil, applicationservice.ErrNotRequester)

		r := newRequest(http.MethodGet, "/api/errands/e-1/applications", "", "user-2", map[string]string{"errandID": "e-1"})
		w := httptest.NewRecorder()

		handler.ListByErrand(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
