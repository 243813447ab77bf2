package probe

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// exprPredeclared are the names visible to a sample expression.
var exprPredeclared = map[string]bool{
	"cycle": true,
	"x":     true,
}

// Expr is a Sampler driven by a Starlark boolean expression of 'cycle' and 'x'.
type Expr struct {
	Source string // Expression source.

	prog *starlark.Program
}

// NewExpr compiles a sample expression, for example "(cycle + 20) % 40 == 0".
func NewExpr(src string) (expr *Expr, err error) {
	opts := syntax.FileOptions{}

	_, prog, err := starlark.SourceProgramOptions(&opts, "sample", "sample = ("+src+")\n", func(name string) bool {
		return exprPredeclared[name]
	})
	if err != nil {
		err = &ErrExpression{Expr: src, Err: err}
		return
	}

	expr = &Expr{Source: src, prog: prog}
	return
}

// Sample implements Sampler.
func (expr *Expr) Sample(cycle int, x int) (ok bool, err error) {
	thread := starlark.Thread{Name: "sample"}
	pred := starlark.StringDict{
		"cycle": starlark.MakeInt(cycle),
		"x":     starlark.MakeInt(x),
	}

	globals, err := expr.prog.Init(&thread, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr.Source, Err: err}
		return
	}

	st_rc, found := globals["sample"]
	if !found {
		err = &ErrExpression{Expr: expr.Source, Err: ErrNotBool("None")}
		return
	}

	st_bool, is_bool := st_rc.(starlark.Bool)
	if !is_bool {
		err = &ErrExpression{Expr: expr.Source, Err: ErrNotBool(st_rc.Type())}
		return
	}

	ok = bool(st_bool)
	return
}
