// Package reduce normalizes lambda terms by leftmost-outermost beta
// reduction with capture-avoiding substitution.
package reduce

import "github.com/vic/lambdaeval/pkg/lambda"

// DefaultMaxSteps bounds Normalize when the caller has no preference.
const DefaultMaxSteps = 100

// alphabetSize is the number of distinct variable names.
const alphabetSize = 26

// Normalize reduces t until it has no redex or maxSteps steps were taken.
// A negative bound is treated as zero.
func Normalize(t lambda.Term, maxSteps int) lambda.Term {
	return NewMachine().Normalize(t, maxSteps)
}

// HasRedex reports whether t contains a redex reachable by Reduce.
func HasRedex(t lambda.Term) bool {
	switch v := t.(type) {
	case lambda.Abs:
		return HasRedex(v.Body)
	case lambda.App:
		if _, ok := v.Fun.(lambda.Abs); ok {
			return true
		}
		return HasRedex(v.Fun) || HasRedex(v.Arg)
	default:
		return false
	}
}

// Reduce performs one step. When the function position of an application
// is not an abstraction both sides are reduced in the same step.
func Reduce(t lambda.Term) lambda.Term {
	return NewMachine().reduce(t)
}

// BetaReduce applies fn to arg.
func BetaReduce(fn lambda.Abs, arg lambda.Term) lambda.Term {
	return NewMachine().betaReduce(fn, arg)
}

// Substitute replaces the free occurrences of param in body with arg,
// renaming binders in body that would capture a free variable of arg.
func Substitute(arg lambda.Term, param lambda.Var, body lambda.Term) lambda.Term {
	return NewMachine().substitute(arg, param, body)
}

// OccursFree reports whether v occurs free in t.
func OccursFree(v lambda.Var, t lambda.Term) bool {
	switch x := t.(type) {
	case lambda.Var:
		return x == v
	case lambda.App:
		return OccursFree(v, x.Fun) || OccursFree(v, x.Arg)
	case lambda.Abs:
		return x.Param != v && OccursFree(v, x.Body)
	default:
		return false
	}
}

// AlphaConvert renames the parameter of fn to the first cyclic successor of
// its name that occurs nowhere in the body. If every other name occurs in
// the body fn is returned unchanged.
func AlphaConvert(fn lambda.Abs) lambda.Abs {
	return NewMachine().alphaConvert(fn)
}

func (m *Machine) reduce(t lambda.Term) lambda.Term {
	switch v := t.(type) {
	case lambda.Abs:
		return lambda.Abs{Param: v.Param, Body: m.reduce(v.Body)}
	case lambda.App:
		if fn, ok := v.Fun.(lambda.Abs); ok {
			return m.betaReduce(fn, v.Arg)
		}
		return lambda.App{Fun: m.reduce(v.Fun), Arg: m.reduce(v.Arg)}
	default:
		return t
	}
}

func (m *Machine) betaReduce(fn lambda.Abs, arg lambda.Term) lambda.Term {
	m.stats.BetaReductions++
	return m.substitute(arg, fn.Param, fn.Body)
}

func (m *Machine) substitute(arg lambda.Term, param lambda.Var, body lambda.Term) lambda.Term {
	switch v := body.(type) {
	case lambda.Var:
		if v == param {
			m.stats.Substitutions++
			return arg
		}
		return v
	case lambda.Abs:
		return m.substituteAbs(arg, param, v, 0)
	case lambda.App:
		return lambda.App{Fun: m.substitute(arg, param, v.Fun), Arg: m.substitute(arg, param, v.Arg)}
	default:
		return body
	}
}

// substituteAbs re-checks the abstraction after every rename, since the
// fresh name is chosen against the body only and may still be free in arg.
// Once renames reaches the alphabet size no capture-free name exists and
// the substitution proceeds under the current binder.
func (m *Machine) substituteAbs(arg lambda.Term, param lambda.Var, fn lambda.Abs, renames int) lambda.Term {
	switch {
	case fn.Param == param:
		return fn
	case !OccursFree(fn.Param, arg), renames >= alphabetSize:
		return lambda.Abs{Param: fn.Param, Body: m.substitute(arg, param, fn.Body)}
	default:
		return m.substituteAbs(arg, param, m.alphaConvert(fn), renames+1)
	}
}

func (m *Machine) alphaConvert(fn lambda.Abs) lambda.Abs {
	fresh := lambda.Next(fn.Param)
	for fresh != fn.Param && occursIn(fresh, fn.Body) {
		fresh = lambda.Next(fresh)
	}
	if fresh == fn.Param {
		return fn
	}
	m.stats.AlphaConversions++
	return lambda.Abs{Param: fresh, Body: rename(fn.Param, fresh, fn.Body)}
}

// occursIn reports whether v appears anywhere in t, binder positions
// included.
func occursIn(v lambda.Var, t lambda.Term) bool {
	switch x := t.(type) {
	case lambda.Var:
		return x == v
	case lambda.App:
		return occursIn(v, x.Fun) || occursIn(v, x.Arg)
	case lambda.Abs:
		return x.Param == v || occursIn(v, x.Body)
	default:
		return false
	}
}

// rename rewrites from to to in t, leaving alone any abstraction that
// rebinds either name.
func rename(from, to lambda.Var, t lambda.Term) lambda.Term {
	switch x := t.(type) {
	case lambda.Var:
		if x == from {
			return to
		}
		return x
	case lambda.App:
		return lambda.App{Fun: rename(from, to, x.Fun), Arg: rename(from, to, x.Arg)}
	case lambda.Abs:
		if x.Param == from || x.Param == to {
			return x
		}
		return lambda.Abs{Param: x.Param, Body: rename(from, to, x.Body)}
	default:
		return t
	}
}
