package query

import (
	"context"
	"time"

	"github.com/deadlyengineer/goseq"
	"github.com/deadlyengineer/goseq/internal/logging"
)

// Group is one group of a grouped result.
type Group struct {
	Key     any      `json:"key"`
	Count   int      `json:"count"`
	Records []Record `json:"records"`
}

// Result holds the records of a query, or its groups if the query is grouped.
type Result struct {
	Scanned int      `json:"scanned"`
	Records []Record `json:"records,omitempty"`
	Groups  []Group  `json:"groups,omitempty"`
}

// Runner runs queries.
type Runner struct {
	log *logging.Logger
}

// NewRunner returns a Runner that logs to log.
func NewRunner(log *logging.Logger) *Runner {
	return &Runner{log: log.WithComponent("query")}
}

// Run applies spec to records.
func (r *Runner) Run(ctx context.Context, records []Record, spec Spec) (*Result, error) {
	start := time.Now()

	scanned := 0

	p := goseq.FromSlice(records).Peek(func(_ Record, _ int) {
		scanned++
	})

	pipeline := Compile(p, spec)

	result := &Result{}

	if spec.GroupBy != "" {
		groups := goseq.GroupByFunc(pipeline, field(spec.GroupBy), goseq.Identity[Record],
			func(key any, elems []Record) Group {
				return Group{Key: key, Count: len(elems), Records: elems}
			}, nil)

		result.Groups = groups.ToSlice()
	} else {
		result.Records = pipeline.ToSlice()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Scanned = scanned

	r.log.Debug().
		Int("scanned", scanned).
		Int("records", len(result.Records)).
		Int("groups", len(result.Groups)).
		Int64(logging.FieldDuration, time.Since(start).Milliseconds()).
		Msg("query finished")

	return result, nil
}

// Compile applies the Where, OrderBy, Select, Distinct, Skip, and Take stages of spec to p.
// Nothing is evaluated until the returned Pipeline is iterated.
func Compile(p *goseq.Pipeline[Record], spec Spec) *goseq.Pipeline[Record] {
	for _, cond := range spec.Where {
		p = p.Where(goseq.FuncPredicate(cond.Match))
	}

	if len(spec.OrderBy) > 0 {
		p = order(p, spec.OrderBy).Pipeline
	}

	if len(spec.Select) > 0 {
		p = goseq.Select(p, goseq.FuncMapper(project(spec.Select)))
	}

	if spec.Distinct {
		p = p.Distinct()
	}

	if spec.Skip > 0 {
		p = p.Skip(spec.Skip)
	}

	if spec.Take > 0 {
		p = p.Take(spec.Take)
	}

	return p
}

// order sorts p by keys, with the first key as the primary key.
func order(p *goseq.Pipeline[Record], keys []SortKey) *goseq.OrderedPipeline[Record] {
	var o *goseq.OrderedPipeline[Record]

	for i, k := range keys {
		switch {
		case i == 0 && k.Descending:
			o = goseq.OrderByDescending(p, field(k.Field))
		case i == 0:
			o = goseq.OrderBy(p, field(k.Field))
		case k.Descending:
			o = goseq.ThenByDescending(o, field(k.Field))
		default:
			o = goseq.ThenBy(o, field(k.Field))
		}
	}

	return o
}

// field returns a function that returns the value of field name, or nil if it is missing.
func field(name string) goseq.Function[Record, any] {
	return func(r Record) any {
		return r[name]
	}
}

// project returns a function that copies fields names of a record into a new record.
func project(names []string) goseq.Function[Record, Record] {
	return func(r Record) Record {
		out := make(Record, len(names))

		for _, name := range names {
			if v, ok := r[name]; ok {
				out[name] = v
			}
		}

		return out
	}
}
