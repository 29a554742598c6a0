package models

import (
	"time"

	"github.com/coffeetech/farms/internal/shared/constants"
)

// UserRoleFarmModel links a user-service role-association to a farm.
type UserRoleFarmModel struct {
	ID                  uint `gorm:"column:user_role_farm_id;primaryKey"`
	UserRoleID          uint `gorm:"not null;uniqueIndex:uk_user_role_farm,priority:1"`
	FarmID              uint `gorm:"not null;uniqueIndex:uk_user_role_farm,priority:2;index"`
	UserRoleFarmStateID uint `gorm:"not null;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (UserRoleFarmModel) TableName() string {
	return constants.TableUserRoleFarm
}
