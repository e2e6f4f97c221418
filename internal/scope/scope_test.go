package scope

import (
	"testing"

	"github.com/mariusvantonder-ux/rawson-bedfordvie-cloud/internal/models"
)

func TestEffectiveSubject(t *testing.T) {
	agent := Identity{UserID: 3, Username: "agent-a", Role: models.RoleAgent}
	admin := Identity{UserID: 1, Username: "office", Role: models.RoleAdmin}
	manager := Identity{UserID: 2, Username: "manager", Role: models.RoleManager}

	cases := []struct {
		name      string
		caller    Identity
		requested int64
		want      int64
	}{
		{"agent ignores requested subject", agent, 7, 3},
		{"agent without subject", agent, 0, 3},
		{"admin takes requested subject", admin, 7, 7},
		{"admin falls back to self", admin, 0, 1},
		{"manager takes requested subject", manager, 9, 9},
		{"manager falls back to self", manager, 0, 2},
		{"negative subject treated as absent", admin, -4, 1},
	}

	for _, tc := range cases {
		if got := EffectiveSubject(tc.caller, tc.requested); got != tc.want {
			t.Errorf("%s: EffectiveSubject = %d, want %d", tc.name, got, tc.want)
		}
	}
}
