// Package graph executes Cypher queries against the medical Neo4j
// database.
package graph

import (
	"regexp"
	"strings"
)

var literalPattern = regexp.MustCompile(`['"]([^'"]*)['"]`)

// LowercaseLiterals lower-cases every quoted literal inside a Cypher
// query. The stored graph keeps string properties lower-cased, so both
// the client gateway and the server normalize queries the same way.
// Double-quoted literals come back single-quoted.
func LowercaseLiterals(query string) string {
	return literalPattern.ReplaceAllStringFunc(query, func(match string) string {
		inner := match[1 : len(match)-1]
		return "'" + strings.ToLower(inner) + "'"
	})
}
