package pgsql

import (
	"fmt"
	"strings"
)

// assignments builds the SET list of a partial UPDATE with positional args.
type assignments struct {
	cols []string
	args []any
}

func (a *assignments) set(col string, v any) {
	a.args = append(a.args, v)
	a.cols = append(a.cols, fmt.Sprintf("%s = $%d", col, len(a.args)))
}

func setIf[T any](a *assignments, col string, v *T) {
	if v != nil {
		a.set(col, *v)
	}
}

// next returns the placeholder for the argument appended after the SET list.
func (a *assignments) next() string {
	return fmt.Sprintf("$%d", len(a.args)+1)
}

func (a *assignments) String() string {
	return strings.Join(a.cols, ", ")
}
