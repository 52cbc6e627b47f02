package filter

import "gorm.io/gorm"

// Group ORs its predicates together and presents them to the outer query as
// one parenthesized AND condition.
type Group struct {
	alias      string
	predicates []*Predicate
}

func Bracket(alias string, predicates ...*Predicate) *Group {
	return &Group{alias: alias, predicates: predicates}
}

func (g *Group) Alias() string {
	return g.alias
}

func (g *Group) Empty() bool {
	for _, p := range g.predicates {
		if !p.Empty() {
			return false
		}
	}
	return true
}

func (g *Group) Apply(db *gorm.DB) *gorm.DB {
	if g.Empty() {
		return db
	}

	// members are rebound to a fresh scope sharing db's session settings
	sub := db.Session(&gorm.Session{NewDB: true})
	first := true
	for _, p := range g.predicates {
		if p.Empty() {
			continue
		}
		if first {
			sub = p.Apply(sub)
			first = false
			continue
		}
		sub = p.Or(sub)
	}

	return db.Where(sub)
}

// All ANDs its members. Used where a bracketed condition mixes fixed clauses
// with a nested OR group.
type All struct {
	alias   string
	members []Query
}

func AllOf(alias string, members ...Query) *All {
	return &All{alias: alias, members: members}
}

func (a *All) Alias() string {
	return a.alias
}

func (a *All) Empty() bool {
	for _, m := range a.members {
		if !m.Empty() {
			return false
		}
	}
	return true
}

func (a *All) Apply(db *gorm.DB) *gorm.DB {
	if a.Empty() {
		return db
	}
	sub := db.Session(&gorm.Session{NewDB: true})
	for _, m := range a.members {
		sub = m.Apply(sub)
	}
	return db.Where(sub)
}
