package collaborator

import (
	"fmt"
	"time"
)

// UserRoleFarm binds a remote role-association id to a local farm. The role
// itself lives in the user service; changing it means pointing the row at a
// new role-association id.
type UserRoleFarm struct {
	id                  uint
	userRoleID          uint
	farmID              uint
	userRoleFarmStateID uint
	createdAt           time.Time
	updatedAt           time.Time
}

func NewUserRoleFarm(userRoleID, farmID, stateID uint) (*UserRoleFarm, error) {
	if userRoleID == 0 {
		return nil, fmt.Errorf("user role ID is required")
	}
	if farmID == 0 {
		return nil, fmt.Errorf("farm ID is required")
	}
	if stateID == 0 {
		return nil, fmt.Errorf("user role farm state ID is required")
	}
	now := time.Now()
	return &UserRoleFarm{
		userRoleID:          userRoleID,
		farmID:              farmID,
		userRoleFarmStateID: stateID,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructUserRoleFarm(id, userRoleID, farmID, stateID uint, createdAt, updatedAt time.Time) (*UserRoleFarm, error) {
	if id == 0 {
		return nil, fmt.Errorf("user role farm ID cannot be zero")
	}
	return &UserRoleFarm{
		id:                  id,
		userRoleID:          userRoleID,
		farmID:              farmID,
		userRoleFarmStateID: stateID,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (u *UserRoleFarm) ID() uint                  { return u.id }
func (u *UserRoleFarm) UserRoleID() uint          { return u.userRoleID }
func (u *UserRoleFarm) FarmID() uint              { return u.farmID }
func (u *UserRoleFarm) UserRoleFarmStateID() uint { return u.userRoleFarmStateID }
func (u *UserRoleFarm) CreatedAt() time.Time      { return u.createdAt }
func (u *UserRoleFarm) UpdatedAt() time.Time      { return u.updatedAt }

func (u *UserRoleFarm) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user role farm ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user role farm ID cannot be zero")
	}
	u.id = id
	return nil
}

// Repoint swaps the role-association this row refers to.
func (u *UserRoleFarm) Repoint(userRoleID uint) error {
	if userRoleID == 0 {
		return fmt.Errorf("user role ID is required")
	}
	u.userRoleID = userRoleID
	u.updatedAt = time.Now()
	return nil
}

func (u *UserRoleFarm) SetState(stateID uint) {
	u.userRoleFarmStateID = stateID
	u.updatedAt = time.Now()
}

func (u *UserRoleFarm) IsInState(stateID uint) bool {
	return u.userRoleFarmStateID == stateID
}
