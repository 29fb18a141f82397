package models

import (
	"errors"
	"fmt"
	"strconv"
)

// DataType tags the string encoding of a Value.
type DataType string

const (
	DataTypeString DataType = "STRING"
	DataTypeInt    DataType = "INT"
	DataTypeFloat  DataType = "FLOAT"
)

// StatOperation aggregates a dimension.
type StatOperation string

const (
	StatAvg StatOperation = "AVG"
	StatMax StatOperation = "MAX"
	StatMin StatOperation = "MIN"
	StatSum StatOperation = "SUM"
)

// SortOperation orders leaderboard rows.
type SortOperation string

const (
	SortAsc  SortOperation = "ASC"
	SortDesc SortOperation = "DESC"
	SortRank SortOperation = "RANK"
)

// FilterOperation compares a dimension against a value.
type FilterOperation string

const (
	FilterEq  FilterOperation = "EQ"
	FilterGT  FilterOperation = "GT"
	FilterLT  FilterOperation = "LT"
	FilterGTE FilterOperation = "GTE"
	FilterLTE FilterOperation = "LTE"
)

var ErrValueType = errors.New("value has a different data type")

// Value is a typed scalar encoded as a string.
type Value struct {
	Val  string   `json:"val"`
	Type DataType `json:"type"`
}

func IntValue(v int64) Value {
	return Value{Val: strconv.FormatInt(v, 10), Type: DataTypeInt}
}

func FloatValue(v float64) Value {
	return Value{Val: strconv.FormatFloat(v, 'f', -1, 64), Type: DataTypeFloat}
}

func StringValue(v string) Value {
	return Value{Val: v, Type: DataTypeString}
}

// Int decodes an INT value.
func (v Value) Int() (int64, error) {
	if v.Type != DataTypeInt {
		return 0, fmt.Errorf("%w: %s", ErrValueType, v.Type)
	}
	return strconv.ParseInt(v.Val, 10, 64)
}

// Float decodes a FLOAT or INT value.
func (v Value) Float() (float64, error) {
	if v.Type != DataTypeFloat && v.Type != DataTypeInt {
		return 0, fmt.Errorf("%w: %s", ErrValueType, v.Type)
	}
	return strconv.ParseFloat(v.Val, 64)
}

func (v Value) String() string {
	return v.Val
}

// Dimension is a named value in a leaderboard row.
type Dimension struct {
	Name string `json:"name"`
	Data Value  `json:"data"`
}

func IntDimension(name string, v int64) Dimension {
	return Dimension{Name: name, Data: IntValue(v)}
}

func FloatDimension(name string, v float64) Dimension {
	return Dimension{Name: name, Data: FloatValue(v)}
}

func StringDimension(name, v string) Dimension {
	return Dimension{Name: name, Data: StringValue(v)}
}

// DimensionNames returns the names of dims in order. A nil slice yields an
// empty, non-nil result.
func DimensionNames(dims []Dimension) []string {
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
	}
	return names
}

type Statistic struct {
	Dimension string        `json:"dimension"`
	Op        StatOperation `json:"op"`
}

func Avg(dimension string) Statistic { return Statistic{Dimension: dimension, Op: StatAvg} }
func Max(dimension string) Statistic { return Statistic{Dimension: dimension, Op: StatMax} }
func Min(dimension string) Statistic { return Statistic{Dimension: dimension, Op: StatMin} }
func Sum(dimension string) Statistic { return Statistic{Dimension: dimension, Op: StatSum} }

type Sort struct {
	Op     SortOperation `json:"op"`
	Target string        `json:"target"`
}

type Filter struct {
	Op     FilterOperation `json:"op"`
	Target string          `json:"target"`
	Val    Value           `json:"val"`
	Not    bool            `json:"not"`
}

type Pagination struct {
	Count int    `json:"count"`
	Token string `json:"token"`
	Prev  string `json:"prev"`
	Next  string `json:"next"`
}

type GetLeaderboardStatsInput struct {
	Stats      []Statistic `json:"stats"`
	Filters    []Filter    `json:"filters"`
	Sort       *Sort       `json:"sort,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type GetLeaderboardStatsOutput struct {
	Stats      [][]Dimension `json:"stats"`
	Pagination Pagination    `json:"pagination"`
}

type PutLeaderboardStatsInput struct {
	Dimensions []Dimension `json:"dimensions"`
}
