package freq

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"cosmossdk.io/errors"
	"github.com/aclements/go-moremath/stats"
	"github.com/rs/zerolog"
)

// Column names of a frequency table.
const (
	FreqAbsolute   = "Frequência Absoluta"
	FreqRelative   = "Frequência Relativa %"
	FreqCumulative = "Frequência Acumulada %"

	// BinColumn holds the Bin of each row of a binned frequency table.
	BinColumn = "Faixa"
)

// MaxBins limits the number of bins StatBinned will generate.
const MaxBins = 1 << 20

// Stat is the interface of statistical transform.
//
// A statistical transform takes a data frame and one of its columns and
// produces an other data frame summarizing that column.
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// Apply this statistic to column of data.
	Apply(data *DataFrame, column string) (*DataFrame, error)
}

// Frequency is one row of a frequency table.
type Frequency struct {
	Category   interface{}
	Absolute   int
	Relative   float64
	Cumulative float64
}

// accumulate fills in the relative and cumulative frequencies of fs in
// their current order.
func accumulate(fs []Frequency) error {
	total := 0
	for _, f := range fs {
		total += f.Absolute
	}
	if total == 0 {
		return ErrEmptyInput
	}
	cum := 0.0
	for i := range fs {
		fs[i].Relative = Round2(float64(fs[i].Absolute) * 100 / float64(total))
		cum = Round2(cum + fs[i].Relative)
		fs[i].Cumulative = cum
	}
	return nil
}

// frequencyFrame turns fs into a frequency table data frame whose
// category column is called column.
func frequencyFrame(name, column string, fs []Frequency) *DataFrame {
	df := NewDataFrame(name, column, FreqAbsolute, FreqRelative, FreqCumulative)
	df.Rows = make([]Row, len(fs))
	for i, f := range fs {
		df.Rows[i] = Row{
			column:         f.Category,
			FreqAbsolute:   f.Absolute,
			FreqRelative:   f.Relative,
			FreqCumulative: f.Cumulative,
		}
	}
	return df
}

// Frequencies reads the rows of a frequency table back. column is the
// category column.
func Frequencies(table *DataFrame, column string) ([]Frequency, error) {
	for _, c := range []string{column, FreqAbsolute, FreqRelative, FreqCumulative} {
		if !table.Has(c) {
			return nil, errors.Wrapf(ErrUnknownColumn, "no column %q in %s", c, table.Name)
		}
	}
	fs := make([]Frequency, table.N())
	for i, row := range table.Rows {
		abs, ok := row[FreqAbsolute].(int)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidParameter, "row %d of %s: bad absolute frequency %v",
				i, table.Name, row[FreqAbsolute])
		}
		rel, ok := toFloat(row[FreqRelative])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidParameter, "row %d of %s: bad relative frequency %v",
				i, table.Name, row[FreqRelative])
		}
		cum, ok := toFloat(row[FreqCumulative])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidParameter, "row %d of %s: bad cumulative frequency %v",
				i, table.Name, row[FreqCumulative])
		}
		fs[i] = Frequency{Category: row[column], Absolute: abs, Relative: rel, Cumulative: cum}
	}
	return fs, nil
}

// Summarize applies each stat to the column it is keyed by and returns
// the resulting tables under the same keys. Columns are processed in
// sorted order and the first failure aborts.
func Summarize(df *DataFrame, byColumn map[string]Stat) (map[string]*DataFrame, error) {
	columns := make([]string, 0, len(byColumn))
	for c := range byColumn {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	tables := make(map[string]*DataFrame, len(byColumn))
	for _, c := range columns {
		s := byColumn[c]
		t, err := s.Apply(df, c)
		if err != nil {
			return nil, errors.Wrapf(err, "%s of %q", s.Name(), c)
		}
		tables[c] = t
	}
	return tables, nil
}

// -------------------------------------------------------------------------
// StatCategorical

// StatCategorical counts the distinct values of a column.
//
// Without Order rows are sorted by count, descending, with ties in
// order of first appearance. With Order the listed categories come
// first in the given order; listed but unobserved categories get a
// zero row and observed categories missing from Order follow sorted by
// count.
type StatCategorical struct {
	Order  []interface{}
	Logger zerolog.Logger
}

var _ Stat = StatCategorical{}

func (StatCategorical) Name() string { return "StatCategorical" }

func (s StatCategorical) Apply(data *DataFrame, column string) (*DataFrame, error) {
	values, err := data.Column(column)
	if err != nil {
		return nil, err
	}

	// Count in order of first appearance.
	seen := NewLevels()
	var fs []Frequency
	for i, raw := range values {
		v, err := Normalize(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d of column %q", i, column)
		}
		if Missing(v) {
			continue
		}
		idx, added := seen.Add(v)
		if added {
			fs = append(fs, Frequency{Category: v})
		}
		fs[idx].Absolute++
	}
	if len(fs) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "column %q has no values", column)
	}

	sort.SliceStable(fs, func(i, j int) bool { return fs[i].Absolute > fs[j].Absolute })

	if s.Order != nil {
		fs, err = s.reorder(fs, column)
		if err != nil {
			return nil, err
		}
	}

	if err := accumulate(fs); err != nil {
		return nil, errors.Wrapf(err, "column %q", column)
	}

	s.Logger.Debug().
		Str("column", column).
		Int("categories", len(fs)).
		Msg("categorical frequency table")

	return frequencyFrame(fmt.Sprintf("frequencies of %s", column), column, fs), nil
}

// reorder arranges the count sorted fs along s.Order.
func (s StatCategorical) reorder(fs []Frequency, column string) ([]Frequency, error) {
	order := NewLevels()
	for _, raw := range s.Order {
		v, err := Normalize(raw)
		if err != nil {
			return nil, errors.Wrap(err, "category order")
		}
		if Missing(v) {
			return nil, errors.Wrapf(ErrInvalidParameter, "missing value %v in category order", raw)
		}
		if order.Contains(v) {
			return nil, errors.Wrapf(ErrInvalidParameter, "category %v listed twice in order", raw)
		}
		order.Add(v)
	}

	ordered := make([]Frequency, order.Len(), order.Len()+len(fs))
	for i, c := range order.Elements() {
		ordered[i].Category = c
	}
	var rest []Frequency
	for _, f := range fs {
		if i := order.Index(f.Category); i >= 0 {
			ordered[i].Absolute = f.Absolute
			continue
		}
		rest = append(rest, f)
	}
	if len(rest) > 0 {
		unlisted := make([]interface{}, len(rest))
		for i, f := range rest {
			unlisted[i] = f.Category
		}
		s.Logger.Warn().
			Str("column", column).
			Str("order", order.String()).
			Interface("categories", unlisted).
			Msg("categories missing from order appended")
	}
	return append(ordered, rest...), nil
}

// Categorical computes the frequency table of column in df. The
// optional order fixes the row order, see StatCategorical.
func Categorical(df *DataFrame, column string, order ...interface{}) (*DataFrame, error) {
	return StatCategorical{Order: order}.Apply(df, column)
}

// -------------------------------------------------------------------------
// StatBinned

// Bin is a numeric interval of a binned frequency table. Bins are open
// on the left and closed on the right unless LeftClosed is set, which
// is the case for the first bin only.
type Bin struct {
	Lo, Hi     float64
	LeftClosed bool
}

func (b Bin) String() string {
	left := "("
	if b.LeftClosed {
		left = "["
	}
	return left + strconv.FormatFloat(b.Lo, 'g', -1, 64) + ", " +
		strconv.FormatFloat(b.Hi, 'g', -1, 64) + "]"
}

// Contains reports whether x lies in b.
func (b Bin) Contains(x float64) bool {
	if b.LeftClosed && x == b.Lo {
		return true
	}
	return x > b.Lo && x <= b.Hi
}

// StatBinned groups a numeric column into bins of width Width and
// counts the values per bin.
//
// Bins start at Origin, or at the smallest value if Origin is nil, and
// extend until the largest value is covered. Bins without values are
// kept unless Drop is set.
type StatBinned struct {
	Width  float64
	Origin *float64
	Drop   bool
	Logger zerolog.Logger
}

var _ Stat = StatBinned{}

func (StatBinned) Name() string { return "StatBinned" }

func (s StatBinned) Apply(data *DataFrame, column string) (*DataFrame, error) {
	if !(s.Width > 0) || math.IsInf(s.Width, 1) {
		return nil, errors.Wrapf(ErrInvalidParameter, "bin width %v", s.Width)
	}
	values, err := data.Column(column)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, 0, len(values))
	for i, raw := range values {
		v, err := Normalize(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d of column %q", i, column)
		}
		if Missing(v) {
			continue
		}
		x, ok := toFloat(v)
		if !ok || math.IsInf(x, 0) {
			return nil, errors.Wrapf(ErrInvalidParameter, "row %d of column %q: %v is not a finite number",
				i, column, raw)
		}
		xs = append(xs, x)
	}
	if len(xs) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "column %q has no values", column)
	}

	min, max := stats.Bounds(xs)
	origin := min
	if s.Origin != nil {
		origin = *s.Origin
		if math.IsNaN(origin) || math.IsInf(origin, 0) || origin > min {
			return nil, errors.Wrapf(ErrInvalidParameter, "origin %v above smallest value %v", origin, min)
		}
	}

	edge := func(k int) float64 { return origin + float64(k)*s.Width }
	nb := math.Ceil((max - origin) / s.Width)
	if nb > MaxBins {
		return nil, errors.Wrapf(ErrInvalidParameter, "bin width %v yields %v bins", s.Width, nb)
	}
	n := int(nb)
	if n < 1 {
		n = 1
	}
	for edge(n) < max {
		n++
	}

	x2bin := func(x float64) int {
		b := int(math.Ceil((x-origin)/s.Width)) - 1
		if b < 0 {
			b = 0
		} else if b > n-1 {
			b = n - 1
		}
		for b > 0 && x <= edge(b) {
			b--
		}
		for b < n-1 && x > edge(b+1) {
			b++
		}
		return b
	}

	counts := make([]int, n)
	for _, x := range xs {
		counts[x2bin(x)]++
	}

	fs := make([]Frequency, 0, n)
	for b, count := range counts {
		if count == 0 && s.Drop {
			continue
		}
		fs = append(fs, Frequency{
			Category: Bin{Lo: edge(b), Hi: edge(b + 1), LeftClosed: b == 0},
			Absolute: count,
		})
	}

	if err := accumulate(fs); err != nil {
		return nil, errors.Wrapf(err, "column %q", column)
	}

	s.Logger.Debug().
		Str("column", column).
		Float64("width", s.Width).
		Int("bins", len(fs)).
		Int("values", len(xs)).
		Msg("binned frequency table")

	return frequencyFrame(fmt.Sprintf("%s binned by %g", column, s.Width), BinColumn, fs), nil
}

// Binned computes the frequency table of the numeric column in df
// grouped into bins of the given width, see StatBinned.
func Binned(df *DataFrame, column string, width float64) (*DataFrame, error) {
	return StatBinned{Width: width}.Apply(df, column)
}
