package scssgen

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/graphite-design/themegen/pkg/tokens"
)

// NormalizeMetadata rewrites md in place, replacing references to internal
// token identifiers with their public declaration names. Role strings have
// each identifier reference rewritten to an inline code reference with the
// variable sigil (`$interactive-01`); alias fields are rewritten to the plain
// formatted name.
//
// Matching is word-boundary-aware and longest-identifier-first, so an
// identifier that is a substring of a longer one never matches inside it.
// The pass is idempotent: substituted references are hyphenated and sigil
// prefixed, which no raw camelCase identifier can match.
func NormalizeMetadata(md *tokens.Metadata, known []string) {
	if md == nil || len(known) == 0 {
		return
	}

	ids := slices.Clone(known)
	sort.SliceStable(ids, func(i, j int) bool {
		return len(ids[i]) > len(ids[j])
	})

	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = regexp.QuoteMeta(id)
	}

	re := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)

	for i := range md.Tokens {
		entry := &md.Tokens[i]

		for j, role := range entry.Role {
			entry.Role[j] = re.ReplaceAllStringFunc(role, func(id string) string {
				return "`$" + FormatTokenName(id) + "`"
			})
		}

		if entry.Alias != "" {
			entry.Alias = FormatTokenName(entry.Alias)
		}
	}
}
