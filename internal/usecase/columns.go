package usecase

import (
	"strings"

	"github.com/brandaudit/backend/internal/domain"
)

// ResolveColumn finds the header playing a semantic role. A header matches
// when any keyword is a case-insensitive substring of the trimmed header,
// and no exclude term is. The first matching header in declaration order
// wins: report column order is meaningful, so no sorting, no shortest
// match. Absence is signalled, not an error; the caller decides whether
// the role was critical.
func ResolveColumn(headers []string, keywords []string, exclude []string) (string, bool) {
	for _, header := range headers {
		lowered := strings.ToLower(strings.TrimSpace(header))
		if lowered == "" {
			continue
		}
		if !containsAny(lowered, keywords) {
			continue
		}
		if containsAny(lowered, exclude) {
			continue
		}
		return header, true
	}
	return "", false
}

// containsAny reports whether s contains any of the terms, case-insensitive.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(s, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// columnSpec declares how one role is discovered in one report type.
type columnSpec struct {
	role     domain.ColumnRole
	keywords []string
	exclude  []string
	critical bool
}

// resolveRoles maps each spec'd role to an actual header. A missing
// non-critical role is simply absent from the result; a missing critical
// role aborts with the searched keywords and the headers seen, so a format
// change upstream is diagnosable.
func resolveRoles(source domain.SourceKind, headers []string, specs []columnSpec) (map[domain.ColumnRole]string, error) {
	resolved := make(map[domain.ColumnRole]string, len(specs))
	for _, spec := range specs {
		header, ok := ResolveColumn(headers, spec.keywords, spec.exclude)
		if !ok {
			if spec.critical {
				return nil, &domain.MissingColumnError{
					Source:   source,
					Role:     spec.role,
					Keywords: spec.keywords,
					Headers:  headers,
				}
			}
			continue
		}
		resolved[spec.role] = header
	}
	return resolved, nil
}
