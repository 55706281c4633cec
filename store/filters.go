// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "strings"

// filter is one WHERE condition of a filtered scan. Filters whose input is
// empty contribute nothing, so callers can pass options straight through.
type filter interface {
	// SQL returns the condition fragment, with ? placeholders
	SQL() string

	// Args returns the arguments for the fragment
	Args() []any
}

// titleSearch matches jobs whose title contains the search text,
// case-insensitively.
type titleSearch struct {
	Search string
}

func (f titleSearch) SQL() string {
	return "lower(title) LIKE '%' || lower(?) || '%'"
}

func (f titleSearch) Args() []any {
	return []any{f.Search}
}

// nameOrEmailSearch matches candidates by substring on name or email,
// case-insensitively.
type nameOrEmailSearch struct {
	Search string
}

func (f nameOrEmailSearch) SQL() string {
	return "(lower(name) LIKE '%' || lower(?) || '%' OR lower(email) LIKE '%' || lower(?) || '%')"
}

func (f nameOrEmailSearch) Args() []any {
	return []any{f.Search, f.Search}
}

// fieldEquals matches a column exactly.
type fieldEquals struct {
	Column string
	Value  string
}

func (f fieldEquals) SQL() string {
	return f.Column + " = ?"
}

func (f fieldEquals) Args() []any {
	return []any{f.Value}
}

// fieldEqualsFold matches a column case-insensitively.
type fieldEqualsFold struct {
	Column string
	Value  string
}

func (f fieldEqualsFold) SQL() string {
	return "lower(" + f.Column + ") = lower(?)"
}

func (f fieldEqualsFold) Args() []any {
	return []any{f.Value}
}

// whereClause combines filters into a WHERE clause. Filters whose value is
// empty are skipped; with nothing left it returns an empty clause.
func whereClause(filters ...filter) (string, []any) {
	conds := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))

	for _, f := range filters {
		empty := true
		for _, a := range f.Args() {
			if s, ok := a.(string); !ok || s != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		conds = append(conds, f.SQL())
		args = append(args, f.Args()...)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
