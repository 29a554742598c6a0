package farm

// AreaUnit is a row of the area_units reference table.
type AreaUnit struct {
	ID           uint
	Name         string
	Abbreviation string
}

// Summary is the joined projection returned by the farm list and detail
// queries: a farm plus its unit and state names and the role-association
// that links the requester to it.
type Summary struct {
	FarmID      uint
	Name        string
	Area        float64
	AreaUnitID  uint
	AreaUnit    string
	FarmStateID uint
	FarmState   string
	UserRoleID  uint
}

// MembershipFilter restricts farm queries to farms in FarmStateID that are
// linked to one of UserRoleIDs by an association in UserRoleFarmStateID.
type MembershipFilter struct {
	UserRoleIDs         []uint
	FarmStateID         uint
	UserRoleFarmStateID uint
}
