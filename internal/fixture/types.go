package fixture

import (
	"fmt"

	"rotconv/internal/mathutil"
)

// Case holds one reference conversion.
type Case struct {
	Table   string
	Index   int            // position within its table
	Degrees mathutil.Euler // (pitch, yaw, roll) in degrees
	Want    *mathutil.Quat // nil when the table only exercises the conversion
	Tol     float64        // 0 = use the caller's default
	Enabled bool           // false for tables that record known tool discrepancies
}

// Name identifies the case in reports, e.g. "normal#4".
func (c Case) Name() string {
	return fmt.Sprintf("%s#%d", c.Table, c.Index)
}

// Filter returns the cases of the named table, or all cases when table is empty.
func Filter(cases []Case, table string) []Case {
	if table == "" {
		return cases
	}
	var out []Case
	for _, c := range cases {
		if c.Table == table {
			out = append(out, c)
		}
	}
	return out
}
