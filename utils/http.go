package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}

// ParseIDList parses a comma-separated id list ("3,7,12"), matching the
// items query-parameter shape the storefront uses for checkout selection.
func ParseIDList(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id64, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id64))
	}
	return ids, nil
}
