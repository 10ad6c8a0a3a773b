package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dental-clinic-api/internal/domain/entity"
)

func TestAuthorized(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		allowed []entity.Role
		want    bool
	}{
		{"exact match", entity.RoleAdmin, []entity.Role{entity.RoleAdmin}, true},
		{"one of several", entity.RoleReceptionist, []entity.Role{entity.RoleAdmin, entity.RoleReceptionist}, true},
		{"not allowed", entity.RolePatient, []entity.Role{entity.RoleAdmin, entity.RoleReceptionist}, false},
		{"empty allow list", entity.RoleAdmin, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorized(tt.role, tt.allowed...); got != tt.want {
				t.Errorf("Authorized(%q, %v) = %v, want %v", tt.role, tt.allowed, got, tt.want)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireRole(entity.RoleAdmin)(next)

	t.Run("allowed role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), RoleKey, entity.RoleAdmin)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), RoleKey, entity.RolePatient)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("missing role unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}
