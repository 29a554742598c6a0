package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	return parsePositive(c.Param(name), name)
}

// ParseUintQuery parses a required positive integer query parameter.
func ParseUintQuery(c *gin.Context, name string) (uint, error) {
	return parsePositive(c.Query(name), name)
}

func parsePositive(raw, name string) (uint, error) {
	if raw == "" {
		return 0, errors.NewValidationError(fmt.Sprintf("El parámetro `%s` es obligatorio", name))
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("El `%s` debe ser un entero positivo.", name))
	}
	return uint(n), nil
}
