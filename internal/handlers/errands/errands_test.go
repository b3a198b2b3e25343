package errands

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
	"github.com/dkhamitov/helpmate/internal/service/errandservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
	"github.com/dkhamitov/helpmate/pkg/geo"
)

func NewMock(t *testing.T) (*ErrandHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, body, userID, role string, params map[string]string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, url, nil)
	} else {
		r = httptest.NewRequest(method, url, bytes.NewBufferString(body))
	}

	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return r.WithContext(ctx)
}

func openErrand() *domain.Errand {
	return &domain.Errand{
		ID:          "e-1",
		RequesterID: "req-1",
		Category:    "delivery",
		PickupLat:   37.5665,
		PickupLng:   126.978,
		DropoffLat:  37.5512,
		DropoffLng:  126.9882,
		BasePrice:   15000,
		TotalPrice:  18000,
		Status:      errandservice.OpenStatus,
		CreatedAt:   time.Now(),
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Errand created",
			body: `{"category":"delivery","pickup_lat":37.5665,"pickup_lng":126.978,"dropoff_lat":37.5512,"dropoff_lng":126.9882,"base_price":15000,"tip":2000}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "req-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, requesterID string, in errandservice.CreateInput) (*domain.Errand, error) {
						assert.Equal(t, "delivery", in.Category)
						assert.Equal(t, int64(15000), in.BasePrice)
						assert.Equal(t, int64(2000), in.Tip)
						return openErrand(), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"category":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Out-of-range coordinates",
			body: `{"category":"delivery","pickup_lat":95,"pickup_lng":126.978}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "req-1", gomock.Any()).
					Return(nil, geo.ErrInvalidLocation)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/errands", tt.body, "req-1", auth.RoleRequester, nil)
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.ErrandResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "e-1", body.ID)
				assert.Equal(t, errandservice.OpenStatus, body.Status)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Errand returned",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "e-1", "user-1").
					Return(openErrand(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Errand not found",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), "e-1", "user-1").
					Return(nil, errandservice.ErrErrandNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodGet, "/api/errands/e-1", "", "user-1", auth.RoleRequester, map[string]string{"errandID": "e-1"})
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListMineHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Requester lists posted errands", func(t *testing.T) {
		service.EXPECT().
			ListByRequester(gomock.Any(), "req-1").
			Return([]domain.Errand{*openErrand()}, nil)

		r := newRequest(http.MethodGet, "/api/errands/mine", "", "req-1", auth.RoleRequester, nil)
		w := httptest.NewRecorder()

		handler.ListMine(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.ErrandResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
	})

	t.Run("Helper lists assigned errands", func(t *testing.T) {
		service.EXPECT().
			ListByHelper(gomock.Any(), "user-2").
			Return([]domain.Errand{}, nil)

		r := newRequest(http.MethodGet, "/api/errands/mine", "", "user-2", auth.RoleHelper, nil)
		w := httptest.NewRecorder()

		handler.ListMine(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestStartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Errand started",
			prepareMock: func() {
				started := openErrand()
				started.Status = errandservice.InProgressStatus
				service.EXPECT().
					Start(gomock.Any(), "e-1", "user-2").
					Return(started, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Caller not the assigned helper",
			prepareMock: func() {
				service.EXPECT().
					Start(gomock.Any(), "e-1", "user-2").
					Return(nil, errandservice.ErrNotAssignedHelper)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Errand not matched yet",
			prepareMock: func() {
				service.EXPECT().
					Start(gomock.Any(), "e-1", "user-2").
					Return(nil, &errandservice.TransitionError{From: errandservice.OpenStatus, To: errandservice.InProgressStatus})
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/errands/e-1/start", "", "user-2", auth.RoleHelper, map[string]string{"errandID": "e-1"})
			w := httptest.NewRecorder()

			handler.Start(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	completed := openErrand()
	completed.Status = errandservice.CompletedStatus
	service.EXPECT().
		Complete(gomock.Any(), "e-1", "user-2").
		Return(completed, nil)

	r := newRequest(http.MethodPost, "/api/errands/e-1/complete", "", "user-2", auth.RoleHelper, map[string]string{"errandID": "e-1"})
	w := httptest.NewRecorder()

	handler.Complete(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.ErrandResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, errandservice.CompletedStatus, body.Status)
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Errand cancelled with reason",
			body: `{"reason":"change of plans"}`,
			prepareMock: func() {
				cancelled := openErrand()
				cancelled.Status = errandservice.CancelledStatus
				service.EXPECT().
					Cancel(gomock.Any(), "e-1", "req-1", "change of plans").
					Return(cancelled, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Errand already terminal",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), "e-1", "req-1", "").
					Return(nil, &errandservice.TransitionError{From: errandservice.CompletedStatus, To: errandservice.CancelledStatus})
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Outsider can't cancel",
			body: "",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), "e-1", "req-1", "").
					Return(nil, errandservice.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/errands/e-1/cancel", tt.body, "req-1", auth.RoleRequester, map[string]string{"errandID": "e-1"})
			w := httptest.NewRecorder()

			handler.Cancel(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
