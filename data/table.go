package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// keyColumn is the scratch column GroupBy groups on.
const keyColumn = "\x00key"

// Table is an ordered set of equally long, named columns.
type Table struct {
	t *table.Table
}

// Column is a named column used to construct a Table. Data must be a slice.
type Column struct {
	Name string
	Data interface{}
}

// New wraps t. A nil t yields an empty table.
func New(t *table.Table) *Table {
	if t == nil {
		t = new(table.Table)
	}
	return &Table{t: t}
}

// FromColumns builds a table from the given columns.
func FromColumns(cols ...Column) (*Table, error) {
	var b table.Builder
	n := -1
	for _, c := range cols {
		v := reflect.ValueOf(c.Data)
		if v.Kind() != reflect.Slice {
			return nil, &ColumnError{Column: c.Name, Want: "slice", Row: -1, Err: ErrTypeCast}
		}
		if n >= 0 && v.Len() != n {
			return nil, &ColumnError{Column: c.Name, Row: -1, Err: ErrLength}
		}
		n = v.Len()
		b.Add(c.Name, c.Data)
	}
	return New(b.Done()), nil
}

// ReadCSV reads a table with a header line from r. Columns whose cells all
// parse as numbers become numeric columns, all other columns hold strings.
func ReadCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data: reading csv: missing header line")
	}
	return New(table.TableFromStrings(records[0], records[1:], true)), nil
}

// Len returns the number of rows in t.
func (t *Table) Len() int { return t.t.Len() }

// Columns returns the column names in order.
func (t *Table) Columns() []string { return t.t.Columns() }

// Has reports whether t has a column named col.
func (t *Table) Has(col string) bool { return t.t.Column(col) != nil }

// Raw returns the underlying go-gg table.
func (t *Table) Raw() *table.Table { return t.t }

// Numeric returns column col as float64 values. Integer and floating point
// columns convert directly. String columns are parsed; empty cells and the
// usual missing-value markers ("NA", "null", "NaN") become NaN.
func (t *Table) Numeric(col string) ([]float64, error) {
	raw := t.t.Column(col)
	if raw == nil {
		return nil, notFound(col)
	}
	v := reflect.ValueOf(raw)
	switch v.Type().Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var xs []float64
		slice.Convert(&xs, raw)
		return xs, nil
	case reflect.String:
		xs := make([]float64, v.Len())
		for i := range xs {
			s := strings.TrimSpace(v.Index(i).String())
			if isMissing(s) {
				xs[i] = math.NaN()
				continue
			}
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, &ColumnError{Column: col, Want: "numeric", Row: i, Err: ErrTypeCast}
			}
			xs[i] = x
		}
		return xs, nil
	case reflect.Ptr:
		if v.Type().Elem().Elem().Kind() != reflect.Float64 {
			break
		}
		xs := make([]float64, v.Len())
		for i := range xs {
			if p := v.Index(i); p.IsNil() {
				xs[i] = math.NaN()
			} else {
				xs[i] = p.Elem().Float()
			}
		}
		return xs, nil
	}
	return nil, &ColumnError{Column: col, Want: "numeric", Row: -1, Err: ErrTypeCast}
}

// Strings returns the string form of every cell of column col. Floating
// point cells are formatted with the shortest representation, NaN cells
// become the empty string.
func (t *Table) Strings(col string) ([]string, error) {
	raw := t.t.Column(col)
	if raw == nil {
		return nil, notFound(col)
	}
	v := reflect.ValueOf(raw)
	ss := make([]string, v.Len())
	switch v.Type().Elem().Kind() {
	case reflect.String:
		for i := range ss {
			ss[i] = v.Index(i).String()
		}
	case reflect.Float32, reflect.Float64:
		for i := range ss {
			ss[i] = FormatFloat(v.Index(i).Float())
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		for i := range ss {
			ss[i] = strconv.FormatInt(v.Index(i).Int(), 10)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		for i := range ss {
			ss[i] = strconv.FormatUint(v.Index(i).Uint(), 10)
		}
	case reflect.Bool:
		for i := range ss {
			ss[i] = strconv.FormatBool(v.Index(i).Bool())
		}
	case reflect.Ptr:
		for i := range ss {
			if p := v.Index(i); !p.IsNil() {
				ss[i] = fmt.Sprint(p.Elem().Interface())
			}
		}
	case reflect.Struct, reflect.Interface:
		// time.Time and friends implement fmt.Stringer.
		for i := range ss {
			ss[i] = fmt.Sprint(v.Index(i).Interface())
		}
	default:
		return nil, &ColumnError{Column: col, Want: "string", Row: -1, Err: ErrTypeCast}
	}
	return ss, nil
}

// FormatFloat formats x the way Strings formats floating point cells.
func FormatFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Select returns a new table holding the given rows of t in the given order.
func (t *Table) Select(rows []int) *Table {
	var b table.Builder
	for _, col := range t.t.Columns() {
		b.Add(col, slice.Select(t.t.Column(col), rows))
	}
	return New(b.Done())
}

// With returns a copy of t with column col added or replaced.
func (t *Table) With(col string, data interface{}) (*Table, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, &ColumnError{Column: col, Want: "slice", Row: -1, Err: ErrTypeCast}
	}
	if len(t.t.Columns()) > 0 && v.Len() != t.Len() {
		return nil, &ColumnError{Column: col, Row: -1, Err: ErrLength}
	}
	return New(table.NewBuilder(t.t).Add(col, data).Done()), nil
}

// A Group is the set of rows sharing one value of a column.
type Group struct {
	Key  string // Key is the string form of the shared value.
	Rows *Table
}

// GroupBy partitions t by the string form of column col. Groups are
// returned in the order their key is first seen.
func (t *Table) GroupBy(col string) ([]Group, error) {
	keys, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	var order []string
	seen := make(map[string]bool)
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
	}
	if len(order) == 0 {
		return nil, nil
	}

	keyed := table.NewBuilder(t.t).Add(keyColumn, keys).Done()
	grouped := table.Remove(table.GroupBy(keyed, keyColumn), keyColumn)
	byKey := make(map[string]*table.Table, len(order))
	for _, gid := range grouped.Tables() {
		byKey[gid.Label().(string)] = grouped.Table(gid)
	}

	groups := make([]Group, len(order))
	for i, k := range order {
		groups[i] = Group{Key: k, Rows: New(byKey[k])}
	}
	return groups, nil
}

func isMissing(s string) bool {
	switch strings.ToLower(s) {
	case "", "na", "nan", "null", "none":
		return true
	}
	return false
}
