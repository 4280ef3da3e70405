package resolve

import (
	"fmt"
	"strings"

	"github.com/powerwire/pmbus-go/pkg/table"
)

// Coverage describes how one (kind, byte count class) combination is
// handled by a decision table.
type Coverage struct {
	Direction Direction
	Kind      string
	Count     string

	// Rule is the matching decision row, or empty when the combination is
	// rejected with a violation.
	Rule string
}

// Rejected reports whether the combination produces a violation.
func (c Coverage) Rejected() bool { return c.Rule == "" }

// countClasses covers every byte count equivalence class the decision
// tables distinguish.
var countClasses = []table.ByteCount{
	table.Variable,
	{Shape: table.CountUnimplemented},
	table.Count(0),
	table.Count(1),
	table.Count(2),
	table.Count(3),
	table.Count(32),
	table.Count(33),
	table.Count(255),
}

var writeKinds = []table.WriteKind{
	{Shape: table.WriteReserved},
	{Shape: table.WriteUnimplemented},
	table.Write("T"),
	table.Send(),
}

var readKinds = []table.ReadKind{
	{Shape: table.ReadReserved},
	{Shape: table.ReadUnimplemented},
	table.Read("T"),
	table.Call("T"),
}

// DecisionCoverage enumerates the full domain of both decision tables and
// returns how every combination is handled. It returns an error if any
// combination matches more than one decision row.
func DecisionCoverage() ([]Coverage, error) {
	var out []Coverage
	var overlaps []string

	for _, w := range writeKinds {
		for _, c := range countClasses {
			e := table.Entry{Ident: table.Named("X"), Write: w, Count: c}
			ids := MatchingWriteRules(e)
			if len(ids) > 1 {
				overlaps = append(overlaps, fmt.Sprintf("write %q / %q: %s", w, c, strings.Join(ids, ",")))
			}
			cov := Coverage{Direction: DirectionWrite, Kind: w.String(), Count: c.String()}
			if len(ids) > 0 {
				cov.Rule = ids[0]
			}
			out = append(out, cov)
		}
	}

	for _, r := range readKinds {
		for _, c := range countClasses {
			e := table.Entry{Ident: table.Named("X"), Read: r, Count: c}
			ids := MatchingReadRules(e)
			if len(ids) > 1 {
				overlaps = append(overlaps, fmt.Sprintf("read %q / %q: %s", r, c, strings.Join(ids, ",")))
			}
			cov := Coverage{Direction: DirectionRead, Kind: r.String(), Count: c.String()}
			if len(ids) > 0 {
				cov.Rule = ids[0]
			}
			out = append(out, cov)
		}
	}

	if len(overlaps) > 0 {
		return out, fmt.Errorf("overlapping decision rows: %s", strings.Join(overlaps, "; "))
	}
	return out, nil
}

// CheckExhaustive verifies that every combination of kind and byte count
// hits exactly one decision row or is rejected with a violation.
func CheckExhaustive() error {
	_, err := DecisionCoverage()
	return err
}
