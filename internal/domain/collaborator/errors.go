package collaborator

import "errors"

var ErrUserRoleFarmNotFound = errors.New("user role farm not found")
