package query

import (
	"context"
	"testing"

	"github.com/deadlyengineer/goseq/internal/logging"
	"github.com/matryer/is"
)

func cats() []Record {
	return []Record{
		{"name": "Barley", "age": 8.3, "color": "brown"},
		{"name": "Boots", "age": 4.9, "color": "black"},
		{"name": "Whiskers", "age": 1.5, "color": "white"},
		{"name": "Daisy", "age": 4.3, "color": "black"},
	}
}

func names(records []Record) []any {
	result := []any{}
	for _, r := range records {
		result = append(result, r["name"])
	}

	return result
}

func TestRun_WhereOrderBy(t *testing.T) {
	is := is.New(t)

	spec := Spec{
		Where: []Condition{
			{Field: "age", Op: "gt", Value: 2},
		},
		OrderBy: []SortKey{
			{Field: "color"},
			{Field: "age", Descending: true},
		},
	}

	result, err := NewRunner(logging.Nop()).Run(context.Background(), cats(), spec)
	is.NoErr(err)

	is.Equal(result.Scanned, 4)
	is.Equal(names(result.Records), []any{"Boots", "Daisy", "Barley"})
}

func TestRun_SelectDistinctSkipTake(t *testing.T) {
	is := is.New(t)

	spec := Spec{
		OrderBy:  []SortKey{{Field: "name"}},
		Select:   []string{"color"},
		Distinct: true,
		Skip:     1,
		Take:     1,
	}

	result, err := NewRunner(logging.Nop()).Run(context.Background(), cats(), spec)
	is.NoErr(err)

	// colors by name: brown, black, black, white
	is.Equal(result.Records, []Record{{"color": "black"}})
}

func TestRun_GroupBy(t *testing.T) {
	is := is.New(t)

	spec := Spec{
		GroupBy: "color",
	}

	result, err := NewRunner(logging.Nop()).Run(context.Background(), cats(), spec)
	is.NoErr(err)

	is.Equal(len(result.Groups), 3)

	is.Equal(result.Groups[0].Key, "brown")
	is.Equal(result.Groups[1].Key, "black")
	is.Equal(result.Groups[1].Count, 2)
	is.Equal(names(result.Groups[1].Records), []any{"Boots", "Daisy"})
	is.Equal(result.Groups[2].Key, "white")
}

func TestRun_Canceled(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(logging.Nop()).Run(ctx, cats(), Spec{})
	is.True(err != nil)
}

func TestCondition_Match(t *testing.T) {
	is := is.New(t)

	r := Record{"name": "Boots", "age": 4.9}

	is.True(Condition{Field: "name", Op: "eq", Value: "Boots"}.Match(r))
	is.True(Condition{Field: "name", Op: "ne", Value: "Daisy"}.Match(r))
	is.True(Condition{Field: "age", Op: "lt", Value: 5}.Match(r))
	is.True(Condition{Field: "age", Op: "gte", Value: 4.9}.Match(r))
	is.True(!Condition{Field: "age", Op: "gt", Value: 5}.Match(r))
	is.True(Condition{Field: "name", Op: "contains", Value: "oo"}.Match(r))
	is.True(Condition{Field: "name", Op: "exists"}.Match(r))
	is.True(!Condition{Field: "color", Op: "exists"}.Match(r))
	is.True(!Condition{Field: "color", Op: "eq", Value: "black"}.Match(r))
	is.True(Condition{Field: "color", Op: "ne", Value: "black"}.Match(r))
}
