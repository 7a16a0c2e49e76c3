// Package query runs declarative queries over JSON records using goseq pipelines.
package query

import (
	"fmt"
	"strings"

	"github.com/deadlyengineer/goseq"
)

// Record is a decoded JSON object.
type Record = map[string]any

// Spec describes a query. Stages are applied in this order: Where, OrderBy, Select, Distinct, Skip,
// Take, GroupBy.
type Spec struct {
	Where    []Condition `yaml:"where" mapstructure:"where" validate:"dive"`
	OrderBy  []SortKey   `yaml:"order_by" mapstructure:"order_by" validate:"dive"`
	Select   []string    `yaml:"select" mapstructure:"select" validate:"dive,required"`
	Distinct bool        `yaml:"distinct" mapstructure:"distinct"`
	Skip     int         `yaml:"skip" mapstructure:"skip" validate:"gte=0"`
	Take     int         `yaml:"take" mapstructure:"take" validate:"gte=0"` // 0 means unlimited
	GroupBy  string      `yaml:"group_by" mapstructure:"group_by"`
}

// Condition filters records by comparing a field to a value.
type Condition struct {
	Field string `yaml:"field" mapstructure:"field" validate:"required"`
	Op    string `yaml:"op" mapstructure:"op" validate:"required,oneof=eq ne lt lte gt gte contains exists"`
	Value any    `yaml:"value" mapstructure:"value"`
}

// SortKey orders records by a field.
type SortKey struct {
	Field      string `yaml:"field" mapstructure:"field" validate:"required"`
	Descending bool   `yaml:"descending" mapstructure:"descending"`
}

// Match returns true if r satisfies c.
// Values are compared with goseq.DefaultComparer, so numbers compare numerically regardless of
// their type, and strings by collation.
func (c Condition) Match(r Record) bool {
	v, ok := r[c.Field]

	switch c.Op {
	case "exists":
		return ok
	case "contains":
		return ok && strings.Contains(fmt.Sprint(v), fmt.Sprint(c.Value))
	}

	if !ok {
		return c.Op == "ne"
	}

	cmp := goseq.DefaultComparer(v, c.Value)

	switch c.Op {
	case "eq":
		return cmp == 0
	case "ne":
		return cmp != 0
	case "lt":
		return cmp < 0
	case "lte":
		return cmp <= 0
	case "gt":
		return cmp > 0
	case "gte":
		return cmp >= 0
	default:
		return false
	}
}
