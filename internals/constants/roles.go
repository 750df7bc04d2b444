package constants

import "fmt"

// Role names carried in the JWT role claim.
const (
	RoleStudent    = "student"
	RoleParent     = "parent"
	RoleStaff      = "staff"
	RoleManagement = "management"
	RoleAdmin      = "admin"
)

const (
	ErrOnlyManagementCanAccess = "only management or admin may access %s"
	ErrOnlyStaffCanAccess      = "only staff, management, or admin may access %s"
)

func RoleErrorManagement(feature string) string {
	return fmt.Sprintf(ErrOnlyManagementCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

var (
	ManagementRoles = []string{
		RoleManagement,
		RoleAdmin,
	}

	StaffRoles = []string{
		RoleStaff,
		RoleManagement,
		RoleAdmin,
	}
)
