package helper

import (
	"testing"

	"fitzone_backend/internals/constants"
)

func TestRegionVisible(t *testing.T) {
	cases := []struct {
		name            string
		role            string
		principalRegion string
		recordRegion    string
		want            bool
	}{
		{"admin sees any region", constants.RoleAdmin, "", "south", true},
		{"admin sees all sentinel", constants.RoleAdmin, "north", constants.RegionAll, true},
		{"customer sees own region", constants.RoleCustomer, "north", "north", true},
		{"customer blocked from other region", constants.RoleCustomer, "north", "south", false},
		{"customer sees all sentinel", constants.RoleCustomer, "north", constants.RegionAll, true},
		{"manager sees own region", constants.RoleManager, "south", "south", true},
		{"manager blocked from other region", constants.RoleManager, "south", "north", false},
		{"manager sees all sentinel", constants.RoleManager, "south", constants.RegionAll, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RegionVisible(tc.role, tc.principalRegion, tc.recordRegion)
			if got != tc.want {
				t.Fatalf("RegionVisible(%s, %s, %s) = %v, want %v",
					tc.role, tc.principalRegion, tc.recordRegion, got, tc.want)
			}
		})
	}
}
