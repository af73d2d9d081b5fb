package mockclickhouserows

import (
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Rows is a scriptable stand-in for a ClickHouse result set. Each entry of
// RowSet is one row in column order; Scan copies values into the matching
// destination pointers.
type Rows struct {
	RowSet  [][]any
	ScanErr error
	IterErr error

	cursor int
	closed bool
}

var _ driver.Rows = &Rows{}

func (r *Rows) Next() bool {
	if r.cursor >= len(r.RowSet) {
		return false
	}
	r.cursor++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	row := r.RowSet[r.cursor-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan expects %d destinations, got %d", len(row), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *float64:
			*p = row[i].(float64)
		case *int:
			*p = row[i].(int)
		case *time.Time:
			*p = row[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan destination %T", d)
		}
	}
	return nil
}

func (r *Rows) ScanStruct(dest any) error {
	return fmt.Errorf("ScanStruct not supported by mock rows")
}

func (r *Rows) ColumnTypes() []driver.ColumnType {
	return nil
}

func (r *Rows) Totals(dest ...any) error {
	return nil
}

func (r *Rows) Columns() []string {
	return nil
}

func (r *Rows) Close() error {
	r.closed = true
	return nil
}

func (r *Rows) Err() error {
	return r.IterErr
}

// Closed reports whether the consumer released the result set.
func (r *Rows) Closed() bool {
	return r.closed
}
