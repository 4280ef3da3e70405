package pmbus

import (
	_ "embed"
	"sync"

	"github.com/powerwire/pmbus-go/pkg/table"
)

//go:embed commands.tbl
var commandTable string

var (
	standardOnce  sync.Once
	standardTable *table.Table
	standardErr   error
)

// StandardTable returns the parsed command table the package is generated
// from. The table is shared; callers must not modify it.
func StandardTable() (*table.Table, error) {
	standardOnce.Do(func() {
		standardTable, standardErr = table.ParseString(commandTable)
		if standardTable != nil {
			standardTable.Source = "commands.tbl"
		}
	})
	return standardTable, standardErr
}

// CommandName returns the name of a standard command code, or "" for
// reserved and manufacturer specific codes.
func CommandName(code uint8) string {
	t, err := StandardTable()
	if err != nil {
		return ""
	}
	for _, e := range t.Entries {
		if e.Byte == code && !e.Ident.Reserved {
			return e.Ident.Name
		}
	}
	return ""
}
