package persistence

import (
	"strings"

	"github.com/finopenpos/backend/internal/domain/shared"
)

// sortableColumns lists the columns a caller may order by. Anything
// else falls back to created_at so user input never reaches the ORDER
// BY clause unchecked.
var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"category":   true,
	"price":      true,
	"stock":      true,
	"total":      true,
	"amount":     true,
	"debt":       true,
	"email":      true,
}

// orderClause builds a safe ORDER BY clause from the filter
func orderClause(filter shared.Filter) string {
	column := strings.ToLower(filter.OrderBy)
	if !sortableColumns[column] {
		column = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	return column + " " + dir
}
