package collaborator

// Info is the identity projection of a role-association returned by the user
// service. It is never persisted.
type Info struct {
	UserRoleID uint   `json:"user_role_id"`
	UserID     uint   `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	RoleID     uint   `json:"role_id"`
	RoleName   string `json:"role_name"`
}
