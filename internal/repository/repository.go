// Package repository contains the PostgreSQL implementations of the service
// store interfaces. Every query on a tenant-owned table conjoins tenant_id
// with the row's own identifier; a cross-tenant ID behaves like a missing row.
package repository

import "github.com/classora/classora-backend/internal/model"

// orderClause maps a caller-supplied sort field through an allowlist so sort
// input can never reach SQL unchecked.
func orderClause(opts model.ListOptions, allowed map[string]string, fallback string) string {
	col, ok := allowed[opts.SortBy]
	if !ok {
		col = fallback
	}
	dir := " DESC"
	if opts.SortAsc {
		dir = " ASC"
	}
	return " ORDER BY " + col + dir
}
