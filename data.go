package freq

import (
	"fmt"
	"io"
	"reflect"

	"cosmossdk.io/errors"
	"github.com/aclements/go-gg/table"
)

// Row maps column names to values.
type Row map[string]interface{}

// DataFrame is an ordered sequence of rows with named columns.
type DataFrame struct {
	Name    string
	Columns []string // Column names in display order.
	Rows    []Row
}

// NewDataFrame sets up an empty data frame with the given columns.
func NewDataFrame(name string, columns ...string) *DataFrame {
	df := &DataFrame{
		Name:    name,
		Columns: make([]string, len(columns)),
	}
	copy(df.Columns, columns)
	return df
}

// Append adds one row with values given in column order.
func (df *DataFrame) Append(values ...interface{}) error {
	if len(values) != len(df.Columns) {
		return errors.Wrapf(ErrInvalidParameter, "got %d values for %d columns of %s",
			len(values), len(df.Columns), df.Name)
	}
	row := make(Row, len(values))
	for i, v := range values {
		row[df.Columns[i]] = v
	}
	df.Rows = append(df.Rows, row)
	return nil
}

// N is the number of rows in df.
func (df *DataFrame) N() int { return len(df.Rows) }

// Has reports whether df contains a column called name.
func (df *DataFrame) Has(name string) bool {
	for _, c := range df.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the raw values of the named column, one per row.
func (df *DataFrame) Column(name string) ([]interface{}, error) {
	if !df.Has(name) {
		return nil, errors.Wrapf(ErrUnknownColumn, "no column %q in %s", name, df.Name)
	}
	col := make([]interface{}, len(df.Rows))
	for i, row := range df.Rows {
		col[i] = row[name]
	}
	return col, nil
}

// Value returns the value of column name in row i.
func (df *DataFrame) Value(i int, name string) interface{} {
	return df.Rows[i][name]
}

// Float returns the value of column name in row i as a float64.
func (df *DataFrame) Float(i int, name string) (float64, bool) {
	v, err := Normalize(df.Rows[i][name])
	if err != nil || Missing(v) {
		return 0, false
	}
	return toFloat(v)
}

// NewDataFrameFrom constructs a data frame from a slice of structs.
// Exported fields and methods without arguments and with one result
// become columns.
func NewDataFrameFrom(data interface{}) (*DataFrame, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return nil, errors.Wrapf(ErrInvalidParameter, "cannot convert %T to data frame", data)
	}
	t := v.Type().Elem()
	if t.Kind() != reflect.Struct {
		return nil, errors.Wrapf(ErrInvalidParameter, "cannot convert %T to data frame", data)
	}

	df := NewDataFrame(t.Name())
	var getters []func(reflect.Value) interface{}

	// Fields first.
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		idx := i
		df.Columns = append(df.Columns, f.Name)
		getters = append(getters, func(e reflect.Value) interface{} {
			return e.Field(idx).Interface()
		})
	}

	// The same for methods.
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		fn := m.Func
		df.Columns = append(df.Columns, m.Name)
		getters = append(getters, func(e reflect.Value) interface{} {
			return fn.Call([]reflect.Value{e})[0].Interface()
		})
	}

	df.Rows = make([]Row, v.Len())
	for r := range df.Rows {
		elem := v.Index(r)
		row := make(Row, len(getters))
		for c, get := range getters {
			row[df.Columns[c]] = get(elem)
		}
		df.Rows[r] = row
	}
	return df, nil
}

// FromTable converts a go-gg table into a data frame.
func FromTable(name string, t *table.Table) *DataFrame {
	df := NewDataFrame(name, t.Columns()...)
	df.Rows = make([]Row, t.Len())
	for i := range df.Rows {
		df.Rows[i] = make(Row, len(df.Columns))
	}
	for _, c := range df.Columns {
		col := reflect.ValueOf(t.Column(c))
		for i := range df.Rows {
			df.Rows[i][c] = col.Index(i).Interface()
		}
	}
	return df
}

// Table converts df into a go-gg table. Missing values are kept as nil.
func (df *DataFrame) Table() *table.Table {
	b := table.NewBuilder(nil)
	for _, c := range df.Columns {
		col := make([]interface{}, len(df.Rows))
		for i, row := range df.Rows {
			col[i] = row[c]
		}
		b.Add(c, col)
	}
	return b.Done()
}

// Print writes df as an aligned text table to w.
func (df *DataFrame) Print(w io.Writer) error {
	if len(df.Columns) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s:\n", df.Name); err != nil {
		return err
	}
	return table.Fprint(w, df.Table())
}
