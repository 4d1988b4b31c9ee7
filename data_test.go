package freq

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/require"
)

type Ops struct {
	Age     int
	Origin  string
	Weight  float64
	Height  float64
	Special []byte
	private int
}

func (o Ops) BMI() float64 {
	return o.Weight / (o.Height * o.Height)
}

func (o Ops) Group() int {
	return 10*(o.Age/10) + 5
}

func (o Ops) Country() string {
	o2c := map[string]string{
		"ch": "Schweiz",
		"de": "Deutschland",
		"uk": "England",
	}
	return o2c[o.Origin]
}

func (o Ops) Other() bool {
	return true
}

func (o Ops) Other2(a int) int {
	return 0
}

var measurement = []Ops{
	{Age: 20, Origin: "de", Weight: 80, Height: 1.88},
	{Age: 22, Origin: "de", Weight: 85, Height: 1.85},
	{Age: 20, Origin: "de", Weight: 90, Height: 1.95},
	{Age: 25, Origin: "de", Weight: 90, Height: 1.72},

	{Age: 20, Origin: "ch", Weight: 77, Height: 1.78},
	{Age: 20, Origin: "ch", Weight: 82, Height: 1.75},
	{Age: 28, Origin: "ch", Weight: 85, Height: 1.80},
	{Age: 20, Origin: "ch", Weight: 84, Height: 1.62},

	{Age: 31, Origin: "de", Weight: 85, Height: 1.88},
	{Age: 30, Origin: "de", Weight: 90, Height: 1.85},
	{Age: 30, Origin: "de", Weight: 99, Height: 1.95},
	{Age: 42, Origin: "de", Weight: 95, Height: 1.72},

	{Age: 30, Origin: "ch", Weight: 80, Height: 1.78},
	{Age: 30, Origin: "ch", Weight: 85, Height: 1.75},
	{Age: 37, Origin: "ch", Weight: 87, Height: 1.80},
	{Age: 47, Origin: "ch", Weight: 90, Height: 1.62},

	{Age: 42, Origin: "uk", Weight: 60, Height: 1.68},
	{Age: 42, Origin: "uk", Weight: 65, Height: 1.65},
	{Age: 44, Origin: "uk", Weight: 55, Height: 1.52},
	{Age: 44, Origin: "uk", Weight: 70, Height: 1.72},
}

func TestNewDataFrameFrom(t *testing.T) {
	df, err := NewDataFrameFrom(measurement)
	require.NoError(t, err)

	if df.N() != 20 {
		t.Errorf("Got %d elements, want 20", df.N())
	}
	want := []string{"Age", "Origin", "Weight", "Height", "Special", "BMI", "Country", "Group", "Other"}
	require.Equal(t, want, df.Columns)
	require.Equal(t, "Ops", df.Name)

	require.Equal(t, 22, df.Value(1, "Age"))
	require.Equal(t, "Schweiz", df.Value(4, "Country"))
	require.Equal(t, 25, df.Value(0, "Group"))
	bmi, ok := df.Float(0, "BMI")
	require.True(t, ok)
	require.InDelta(t, 80/(1.88*1.88), bmi, 1e-12)
}

func TestNewDataFrameFromBadInput(t *testing.T) {
	for _, data := range []interface{}{42, []int{1, 2}, Ops{}} {
		_, err := NewDataFrameFrom(data)
		require.True(t, errors.Is(err, ErrInvalidParameter), "%T: got %v", data, err)
	}
}

func TestAppendAndColumn(t *testing.T) {
	df := NewDataFrame("pets", "Kind", "Legs")
	require.NoError(t, df.Append("cat", 4))
	require.NoError(t, df.Append("bird", 2))
	err := df.Append("snake")
	require.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
	require.Equal(t, 2, df.N())

	kinds, err := df.Column("Kind")
	require.NoError(t, err)
	require.Equal(t, []interface{}{"cat", "bird"}, kinds)

	_, err = df.Column("Wings")
	require.True(t, errors.Is(err, ErrUnknownColumn), "got %v", err)

	require.True(t, df.Has("Legs"))
	require.False(t, df.Has("legs"))

	legs, ok := df.Float(1, "Legs")
	require.True(t, ok)
	require.Equal(t, 2.0, legs)
	_, ok = df.Float(1, "Kind")
	require.False(t, ok)
}

func TestTableConversion(t *testing.T) {
	tab := table.NewBuilder(nil).
		Add("name", []string{"Washington", "Adams", "Jefferson"}).
		Add("terms", []int{2, 1, 2}).
		Done()

	df := FromTable("presidents", tab)
	require.Equal(t, []string{"name", "terms"}, df.Columns)
	require.Equal(t, 3, df.N())
	require.Equal(t, "Adams", df.Value(1, "name"))
	require.Equal(t, 2, df.Value(2, "terms"))

	freqs, err := Categorical(df, "terms")
	require.NoError(t, err)
	requireFrequencies(t, freqs, "terms", []Frequency{
		{int64(2), 2, 66.67, 66.67},
		{int64(1), 1, 33.33, 100},
	})

	back := freqs.Table()
	require.Equal(t, freqs.Columns, back.Columns())
	require.Equal(t, 2, back.Len())
}

func TestPrint(t *testing.T) {
	df, err := NewDataFrameFrom(measurement)
	require.NoError(t, err)
	freqs, err := Categorical(df, "Origin")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, freqs.Print(&buf))
	out := buf.String()
	require.Contains(t, out, "frequencies of Origin")
	require.Contains(t, out, FreqAbsolute)
	require.Contains(t, out, FreqCumulative)
	require.Contains(t, out, "uk")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintWriteError(t *testing.T) {
	freqs, err := Categorical(column("x", "A", "B"), "x")
	require.NoError(t, err)
	require.EqualError(t, freqs.Print(failingWriter{}), "disk full")
	require.NoError(t, NewDataFrame("nothing").Print(failingWriter{}))
}
