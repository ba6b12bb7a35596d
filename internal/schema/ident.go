package schema

import (
	"regexp"

	"github.com/lib/pq"
)

// plainIdent matches identifiers that need no quoting in SQL text.
var plainIdent = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// QuoteIdent quotes an identifier for SQL output only when it has to,
// keeping the common lowercase case readable.
func QuoteIdent(name string) string {
	if plainIdent.MatchString(name) {
		return name
	}
	return pq.QuoteIdentifier(name)
}
