package filter

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// FilterHelper folds an ordered list of queries onto a base query.
type FilterHelper struct {
	queries []Query
	orders  []clause.OrderByColumn
}

func NewFilterHelper() *FilterHelper {
	return &FilterHelper{}
}

// SetQueries replaces the list of queries.
func (h *FilterHelper) SetQueries(queries ...Query) *FilterHelper {
	h.queries = queries
	return h
}

func (h *FilterHelper) Queries() []Query {
	return h.queries
}

// OrderBy appends one ordering clause per column, in the given order.
func (h *FilterHelper) OrderBy(columns []string, direction Direction) *FilterHelper {
	for _, c := range columns {
		h.orders = append(h.orders, clause.OrderByColumn{
			Column: clause.Column{Name: c, Raw: true},
			Desc:   direction == Desc,
		})
	}
	return h
}

// Apply folds base through every query, then appends the ordering clauses.
func (h *FilterHelper) Apply(base *gorm.DB) *gorm.DB {
	query := base
	for _, q := range h.queries {
		query = q.Apply(query)
	}
	for _, o := range h.orders {
		query = query.Order(o)
	}
	return query
}

// Applied returns the aliases of the queries that constrain the result.
func (h *FilterHelper) Applied() []string {
	var aliases []string
	for _, q := range h.queries {
		if !q.Empty() {
			aliases = append(aliases, q.Alias())
		}
	}
	return aliases
}
