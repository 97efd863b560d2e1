package auth

import (
	"net/http"
	"testing"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

func TestRequireRole(t *testing.T) {
	admin := &Claims{UserID: 1, Role: domain.RoleAdmin}
	user := &Claims{UserID: 2, Role: domain.RoleUser}

	tests := []struct {
		name      string
		claims    *Claims
		minLevel  int
		permitted bool
		status    int
	}{
		{"nil claims user level", nil, LevelUser, false, http.StatusUnauthorized},
		{"nil claims admin level", nil, LevelAdmin, false, http.StatusUnauthorized},
		{"user at user level", user, LevelUser, true, http.StatusOK},
		{"user at admin level", user, LevelAdmin, false, http.StatusForbidden},
		{"admin at user level", admin, LevelUser, true, http.StatusOK},
		{"admin at admin level", admin, LevelAdmin, true, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RequireRole(tt.claims, tt.minLevel)
			if d.Permitted != tt.permitted {
				t.Fatalf("permitted = %v, want %v", d.Permitted, tt.permitted)
			}
			if d.Status != tt.status {
				t.Fatalf("status = %d, want %d", d.Status, tt.status)
			}
			if !d.Permitted && d.Reason == "" {
				t.Fatalf("denied decision must carry a reason")
			}
		})
	}
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	admin := &Claims{UserID: 1, Role: domain.RoleAdmin}
	user := &Claims{UserID: 2, Role: domain.RoleUser}

	tests := []struct {
		name      string
		claims    *Claims
		ownerID   int
		permitted bool
		status    int
	}{
		{"nil claims", nil, 2, false, http.StatusUnauthorized},
		{"owner", user, 2, true, http.StatusOK},
		{"not owner", user, 3, false, http.StatusForbidden},
		{"admin on any subject", admin, 99, true, http.StatusOK},
		{"zero owner id from bad path", user, 0, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RequireOwnerOrAdmin(tt.claims, tt.ownerID)
			if d.Permitted != tt.permitted {
				t.Fatalf("permitted = %v, want %v", d.Permitted, tt.permitted)
			}
			if d.Status != tt.status {
				t.Fatalf("status = %d, want %d", d.Status, tt.status)
			}
		})
	}
}
