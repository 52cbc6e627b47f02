// Package filter builds optional WHERE conditions on top of a gorm query.
//
// Every predicate is a pure transformation of *gorm.DB: absent input leaves
// the query untouched and returns the very same instance.
package filter

import (
	"database/sql"
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

// Query is anything FilterHelper can fold onto a base query.
type Query interface {
	Alias() string
	Empty() bool
	Apply(db *gorm.DB) *gorm.DB
}

// Predicate is a single named-parameter condition. Aliases must be unique
// within one composed query.
type Predicate struct {
	alias string
	expr  string
	args  []any
}

func (p *Predicate) Alias() string {
	return p.alias
}

func (p *Predicate) Empty() bool {
	return p == nil || p.expr == ""
}

// Apply ANDs the condition onto db.
func (p *Predicate) Apply(db *gorm.DB) *gorm.DB {
	if p.Empty() {
		return db
	}
	return db.Where(p.expr, p.args...)
}

// Or ORs the condition onto db. Used inside a bracketed group.
func (p *Predicate) Or(db *gorm.DB) *gorm.DB {
	if p.Empty() {
		return db
	}
	return db.Or(p.expr, p.args...)
}

func noop(alias string) *Predicate {
	return &Predicate{alias: alias}
}

// Raw wraps a hand written condition. An empty expression is a no-op.
func Raw(alias, expr string, args ...any) *Predicate {
	return &Predicate{alias: alias, expr: expr, args: args}
}

// Equal builds "column = @alias". Nil, nil pointers and empty strings are
// absent; zero numbers and false are valid targets.
func Equal(alias, column string, value any) *Predicate {
	v, ok := present(value)
	if !ok {
		return noop(alias)
	}
	return &Predicate{
		alias: alias,
		expr:  fmt.Sprintf("%s = @%s", column, alias),
		args:  []any{sql.Named(alias, v)},
	}
}

// In builds "column IN @alias". Nil or empty collections are a no-op.
func In(alias, column string, values any) *Predicate {
	if values == nil {
		return noop(alias)
	}
	rv := reflect.ValueOf(values)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() == 0 {
		return noop(alias)
	}
	return &Predicate{
		alias: alias,
		expr:  fmt.Sprintf("%s IN @%s", column, alias),
		args:  []any{sql.Named(alias, values)},
	}
}

// From builds "column >= @alias". Any falsy value, 0 included, is a no-op.
func From(alias, column string, value any) *Predicate {
	return bound(alias, column, ">=", value)
}

// To builds "column <= @alias". Any falsy value, 0 included, is a no-op.
func To(alias, column string, value any) *Predicate {
	return bound(alias, column, "<=", value)
}

func bound(alias, column, op string, value any) *Predicate {
	v, ok := truthy(value)
	if !ok {
		return noop(alias)
	}
	return &Predicate{
		alias: alias,
		expr:  fmt.Sprintf("%s %s @%s", column, op, alias),
		args:  []any{sql.Named(alias, v)},
	}
}

// Between builds "column BETWEEN @alias_from AND @alias_to" and is a no-op
// unless both bounds are present.
func Between(alias, column string, from, to any) *Predicate {
	f, okFrom := present(from)
	t, okTo := present(to)
	if !okFrom || !okTo {
		return noop(alias)
	}
	fromName, toName := alias+"_from", alias+"_to"
	return &Predicate{
		alias: alias,
		expr:  fmt.Sprintf("%s BETWEEN @%s AND @%s", column, fromName, toName),
		args:  []any{sql.Named(fromName, f), sql.Named(toName, t)},
	}
}

// Flag builds "column = @alias" only when value is true. A false flag cannot
// be told apart from a flag that was not requested.
func Flag(alias, column string, value bool) *Predicate {
	if !value {
		return noop(alias)
	}
	return &Predicate{
		alias: alias,
		expr:  fmt.Sprintf("%s = @%s", column, alias),
		args:  []any{sql.Named(alias, true)},
	}
}

// ILike builds "column ILIKE @alias" matching value anywhere in the column.
func ILike(alias, column, value string) *Predicate {
	if value == "" {
		return noop(alias)
	}
	return &Predicate{
		alias: alias,
		expr:  fmt.Sprintf("%s ILIKE @%s", column, alias),
		args:  []any{sql.Named(alias, "%"+value+"%")},
	}
}

// present dereferences pointers and reports whether the value was supplied.
func present(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String && rv.Len() == 0 {
		return nil, false
	}
	return rv.Interface(), true
}

func truthy(value any) (any, bool) {
	v, ok := present(value)
	if !ok || reflect.ValueOf(v).IsZero() {
		return nil, false
	}
	return v, true
}
