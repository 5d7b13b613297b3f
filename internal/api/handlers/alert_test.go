package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/validator"
	"github.com/pratik-mahalle/cloudsentry/internal/services"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func newAlertHandler(outcomes map[string]bool) (*AlertHandler, alert.Service) {
	alertRepo := testutil.NewMockAlertRepository()
	auditRepo := testutil.NewMockAuditRepository()
	notifier := testutil.NewMockNotifier(outcomes)
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	auditSvc := services.NewAuditService(auditRepo, log)
	svc := services.NewAlertService(alertRepo, auditSvc, notifier, log)
	return NewAlertHandler(svc, log, validator.New()), svc
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAlertHandler_Create(t *testing.T) {
	handler, _ := newAlertHandler(nil)

	tests := []struct {
		name           string
		requestBody    dto.CreateAlertRequest
		expectedStatus int
	}{
		{
			name: "create valid alert",
			requestBody: dto.CreateAlertRequest{
				Type:     alert.TypeResource,
				Title:    "CPU threshold breached",
				Severity: alert.SeverityWarning,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "reject unknown severity",
			requestBody: dto.CreateAlertRequest{
				Type:     alert.TypeResource,
				Title:    "CPU threshold breached",
				Severity: "catastrophic",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "reject missing title",
			requestBody: dto.CreateAlertRequest{
				Type:     alert.TypeResource,
				Severity: alert.SeverityWarning,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v, body: %s", status, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestAlertHandler_Get(t *testing.T) {
	handler, svc := newAlertHandler(nil)

	a, err := svc.Create(context.Background(), &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "CPU threshold breached",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name           string
		alertID        string
		expectedStatus int
	}{
		{
			name:           "get existing alert",
			alertID:        a.ID,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "get non-existing alert",
			alertID:        "no-such-alert",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts/"+tt.alertID, nil)
			req = withURLParam(req, "id", tt.alertID)
			rr := httptest.NewRecorder()

			handler.Get(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tt.expectedStatus)
			}
		})
	}
}

func TestAlertHandler_Deliver(t *testing.T) {
	tests := []struct {
		name           string
		outcomes       map[string]bool
		expectedStatus int
		wantDelivered  bool
	}{
		{
			name:           "all channels succeed",
			outcomes:       map[string]bool{"email": true, "slack": true},
			expectedStatus: http.StatusOK,
			wantDelivered:  true,
		},
		{
			name:           "partial failure still delivers",
			outcomes:       map[string]bool{"email": false, "slack": true},
			expectedStatus: http.StatusOK,
			wantDelivered:  true,
		},
		{
			name:           "total failure returns bad gateway",
			outcomes:       map[string]bool{"email": false, "slack": false},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, svc := newAlertHandler(tt.outcomes)

			a, err := svc.Create(context.Background(), &alert.Alert{
				Type:     alert.TypeResource,
				Severity: alert.SeverityWarning,
				Title:    "CPU threshold breached",
			})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+a.ID+"/deliver", nil)
			req = withURLParam(req, "id", a.ID)
			rr := httptest.NewRecorder()

			handler.Deliver(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v, body: %s", status, tt.expectedStatus, rr.Body.String())
			}

			if rr.Code == http.StatusOK {
				var response struct {
					Data dto.DeliveryResultDTO `json:"data"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if response.Data.Delivered != tt.wantDelivered {
					t.Errorf("delivered = %v, want %v", response.Data.Delivered, tt.wantDelivered)
				}
			}
		})
	}
}

func TestAlertHandler_Resolve(t *testing.T) {
	handler, svc := newAlertHandler(map[string]bool{"email": true})

	a, err := svc.Create(context.Background(), &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "CPU threshold breached",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	body, _ := json.Marshal(dto.ResolveAlertRequest{Actor: "ops@example.com"})

	// Resolving twice returns 200 both times
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+a.ID+"/resolve", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = withURLParam(req, "id", a.ID)
		rr := httptest.NewRecorder()

		handler.Resolve(rr, req)

		if status := rr.Code; status != http.StatusOK {
			t.Fatalf("resolve attempt %d returned status %v, want %v", i+1, status, http.StatusOK)
		}
	}
}

func TestAlertHandler_Acknowledge(t *testing.T) {
	handler, svc := newAlertHandler(map[string]bool{"email": true})

	a, err := svc.Create(context.Background(), &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "Memory threshold breached",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+a.ID+"/acknowledge", nil)
	req = withURLParam(req, "id", a.ID)
	rr := httptest.NewRecorder()

	handler.Acknowledge(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}
