// Package freq computes frequency tables for descriptive statistics.
//
//
// Data Representation: Data Frames
//
// Data is held in a DataFrame: an ordered sequence of rows where each
// row maps a column name to a value.
//      df := freq.NewDataFrame("survey", "Sex", "Age")
//      df.Append("F", 23)
//      df.Append("M", 31)
//
// Slices of structs can be turned into data frames directly; exported
// fields and methods without parameters become columns:
//      type Measurement struct {
//          Height float64
//          Weight float64
//          Age    int
//      }
//      func (m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
//
//      df, err := freq.NewDataFrameFrom(measurements)
//
//
// Types of Data Elements
//
// Internaly freq normalises values to the following Go types:
//     float64    for continous data
//     int64      for discrete data
//     string     for discrete data
//     bool       for discrete data
// Other comparable types (time.Time, Bin, ...) are kept as they are.
// Uint64 values above math.MaxInt64 overflow.
// Floats with an integral value are stored as int64, so 1 and 1.0 are
// the same category. Booleans are not numbers: true and 1 are counted
// as two different categories.
// A nil value, a missing key or a NaN is a missing value and is not
// counted.
//
//
// Frequency Tables
//
// Categorical counts the distinct values of a column and Binned groups
// a numeric column into fixed width bins. Both produce a data frame
// with the columns
//     <category or "Faixa">
//     "Frequência Absoluta"      count
//     "Frequência Relativa %"    count/total*100, rounded half to even
//     "Frequência Acumulada %"   running sum of the relative column
//
// Charts of frequency tables are drawn by package chart.
package freq
