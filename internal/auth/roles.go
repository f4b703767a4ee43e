package auth

// Role is the closed set of platform roles. Authorization decisions go
// through Allowed; handlers never compare roles inline.
type Role string

const (
	RoleSuperAdmin      Role = "SUPER_ADMIN"
	RoleCompanyAdmin    Role = "COMPANY_ADMIN"
	RoleFinanceApprover Role = "FINANCE_APPROVER"
	RoleOperations      Role = "OPERATIONS"
	RoleTransporter     Role = "TRANSPORTER"
	RoleUser            Role = "USER"
)

// Action names a privileged operation.
type Action string

const (
	ActionUpdateShipmentStatus Action = "shipment.update_status"
	ActionManageVendors        Action = "vendor.manage"
	ActionViewAnalytics        Action = "analytics.view"
	ActionListCompanyShipments Action = "shipment.list_company"
)

var policy = map[Action][]Role{
	ActionUpdateShipmentStatus: {RoleSuperAdmin, RoleCompanyAdmin, RoleOperations, RoleTransporter},
	ActionManageVendors:        {RoleSuperAdmin, RoleCompanyAdmin},
	ActionViewAnalytics:        {RoleCompanyAdmin, RoleFinanceApprover},
	ActionListCompanyShipments: {RoleSuperAdmin, RoleCompanyAdmin, RoleOperations, RoleFinanceApprover},
}

// Allowed is the single authorization check consulted by every privileged
// endpoint.
func Allowed(role Role, action Action) bool {
	for _, r := range policy[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Identity is the authenticated caller attached to each request context.
type Identity struct {
	UserID    int64
	CompanyID int64
	Role      Role
	Email     string
}
