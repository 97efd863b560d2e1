package auth

import (
	"net/http"

	"github.com/shoplane/commerce-api/internal/core/domain"
)

// Privilege levels for RequireRole. Admin strictly dominates user.
const (
	LevelUser  = 1
	LevelAdmin = 2
)

// Decision is the outcome of an authorization check. Handlers translate a
// denied decision directly into a response: c.JSON(d.Status, {"error": d.Reason}).
type Decision struct {
	Permitted bool   `json:"permitted"`
	Status    int    `json:"status"`
	Reason    string `json:"reason"`
}

func granted() Decision {
	return Decision{Permitted: true, Status: http.StatusOK, Reason: "access granted"}
}

func denied(status int, reason string) Decision {
	return Decision{Permitted: false, Status: status, Reason: reason}
}

// RequireRole checks that the session meets a minimum privilege level.
// Absent claims always deny with 401; a non-admin asking for LevelAdmin
// denies with 403. Total function: never panics, never errors.
func RequireRole(claims *Claims, minLevel int) Decision {
	if claims == nil {
		return denied(http.StatusUnauthorized, "missing or invalid token")
	}
	if minLevel >= LevelAdmin && claims.Role != domain.RoleAdmin {
		return denied(http.StatusForbidden, "admin access required")
	}
	return granted()
}

// RequireOwnerOrAdmin permits admins unconditionally and other users only
// when they target their own subject id. Any ownerID value, including the
// zero from a malformed path parameter, yields a decision.
func RequireOwnerOrAdmin(claims *Claims, ownerID int) Decision {
	if claims == nil {
		return denied(http.StatusUnauthorized, "missing or invalid token")
	}
	if claims.Role == domain.RoleAdmin {
		return granted()
	}
	if claims.UserID == ownerID {
		return granted()
	}
	return denied(http.StatusForbidden, "forbidden")
}
