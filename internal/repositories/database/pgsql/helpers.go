package pgsql

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s safe to embed in a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
