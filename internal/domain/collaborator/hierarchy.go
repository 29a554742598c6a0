package collaborator

// assignable maps each role to the roles it may hand out.
var assignable = map[string][]string{
	RoleOwner:         {RoleAdministrator, RoleOperator},
	RoleAdministrator: {RoleOperator},
	RoleOperator:      {},
}

var editPermissions = map[string]string{
	RoleAdministrator: PermEditAdministrator,
	RoleOperator:      PermEditOperator,
}

var deletePermissions = map[string]string{
	RoleAdministrator: PermDeleteAdministrator,
	RoleOperator:      PermDeleteOperator,
}

// CanAssign reports whether a requester holding role may assign target.
// Roles outside the hierarchy can assign nothing.
func CanAssign(role, target string) bool {
	for _, r := range assignable[role] {
		if r == target {
			return true
		}
	}
	return false
}

// InHierarchy reports whether role appears in the assignment hierarchy.
func InHierarchy(role string) bool {
	_, ok := assignable[role]
	return ok
}

// AssignableRoles returns a copy of the roles role may assign.
func AssignableRoles(role string) []string {
	return append([]string(nil), assignable[role]...)
}

// EditPermissionFor returns the permission needed to move a collaborator to
// target. ok is false when target is not a promotable role.
func EditPermissionFor(target string) (perm string, ok bool) {
	perm, ok = editPermissions[target]
	return perm, ok
}

// DeletePermissionFor returns the permission needed to remove a collaborator
// currently holding role.
func DeletePermissionFor(role string) (perm string, ok bool) {
	perm, ok = deletePermissions[role]
	return perm, ok
}

// HasPermission reports whether name is in perms.
func HasPermission(perms []string, name string) bool {
	for _, p := range perms {
		if p == name {
			return true
		}
	}
	return false
}
