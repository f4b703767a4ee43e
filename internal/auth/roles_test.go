package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		action  Action
		allowed bool
	}{
		{"transporter updates status", RoleTransporter, ActionUpdateShipmentStatus, true},
		{"operations updates status", RoleOperations, ActionUpdateShipmentStatus, true},
		{"plain user cannot update status", RoleUser, ActionUpdateShipmentStatus, false},
		{"finance cannot update status", RoleFinanceApprover, ActionUpdateShipmentStatus, false},

		{"company admin manages vendors", RoleCompanyAdmin, ActionManageVendors, true},
		{"super admin manages vendors", RoleSuperAdmin, ActionManageVendors, true},
		{"operations cannot manage vendors", RoleOperations, ActionManageVendors, false},
		{"transporter cannot manage vendors", RoleTransporter, ActionManageVendors, false},

		{"finance views analytics", RoleFinanceApprover, ActionViewAnalytics, true},
		{"company admin views analytics", RoleCompanyAdmin, ActionViewAnalytics, true},
		{"super admin does not view company analytics", RoleSuperAdmin, ActionViewAnalytics, false},
		{"plain user cannot view analytics", RoleUser, ActionViewAnalytics, false},

		{"finance lists company shipments", RoleFinanceApprover, ActionListCompanyShipments, true},
		{"plain user lists only their own", RoleUser, ActionListCompanyShipments, false},
		{"transporter lists only their own", RoleTransporter, ActionListCompanyShipments, false},

		{"unknown role", Role("AUDITOR"), ActionManageVendors, false},
		{"unknown action", RoleSuperAdmin, Action("invoice.void"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Allowed(tt.role, tt.action))
		})
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	identity := Identity{UserID: 7, CompanyID: 3, Role: RoleOperations, Email: "ops@freight.example"}

	ctx := WithIdentity(context.Background(), identity)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestFromContextMissing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
