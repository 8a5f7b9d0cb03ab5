package pagination

import (
	"fmt"
	"strings"
)

// Expr is a query condition that compiles to a SQL fragment with
// placeholder arguments. Conditions are combined with And/Or instead of
// merging dynamic maps, so the shape of every query is visible at the
// call site.
type Expr interface {
	compile() (string, []interface{})
}

type eqExpr struct {
	field string
	value interface{}
}

type containsExpr struct {
	field string
	term  string
}

type andExpr struct {
	exprs []Expr
}

type orExpr struct {
	exprs []Expr
}

// Eq matches records where field equals value.
func Eq(field string, value interface{}) Expr {
	return eqExpr{field: field, value: value}
}

// Contains matches records where field contains term, case-insensitive.
func Contains(field, term string) Expr {
	return containsExpr{field: field, term: term}
}

// And combines conditions so that all must match. Nil conditions are
// dropped; a single remaining condition is returned as-is.
func And(exprs ...Expr) Expr {
	return combine(true, exprs)
}

// Or combines conditions so that at least one must match.
func Or(exprs ...Expr) Expr {
	return combine(false, exprs)
}

func combine(conjunction bool, exprs []Expr) Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			kept = append(kept, e)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	if conjunction {
		return andExpr{exprs: kept}
	}
	return orExpr{exprs: kept}
}

func (e eqExpr) compile() (string, []interface{}) {
	return fmt.Sprintf("%s = ?", e.field), []interface{}{e.value}
}

func (e containsExpr) compile() (string, []interface{}) {
	return fmt.Sprintf("LOWER(%s) LIKE ?", e.field),
		[]interface{}{"%" + strings.ToLower(e.term) + "%"}
}

func (e andExpr) compile() (string, []interface{}) {
	return joinExprs(e.exprs, " AND ")
}

func (e orExpr) compile() (string, []interface{}) {
	return joinExprs(e.exprs, " OR ")
}

func joinExprs(exprs []Expr, sep string) (string, []interface{}) {
	parts := make([]string, 0, len(exprs))
	var args []interface{}
	for _, e := range exprs {
		sql, a := e.compile()
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, a...)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, sep) + ")", args
}

// Compile renders the condition for use with a Where clause. A nil
// condition compiles to the empty string.
func Compile(e Expr) (string, []interface{}) {
	if e == nil {
		return "", nil
	}
	return e.compile()
}
