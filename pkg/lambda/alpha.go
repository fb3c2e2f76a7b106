package lambda

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// FreeVars returns the variables occurring free in t, sorted by name.
func FreeVars(t Term) []Var {
	var free []Var
	var walk func(t Term, bound map[Var]int)
	walk = func(t Term, bound map[Var]int) {
		switch v := t.(type) {
		case Var:
			if bound[v] == 0 {
				free = append(free, v)
			}
		case Abs:
			bound[v.Param]++
			walk(v.Body, bound)
			bound[v.Param]--
		case App:
			walk(v.Fun, bound)
			walk(v.Arg, bound)
		}
	}
	walk(t, map[Var]int{})

	free = lo.Uniq(free)
	slices.SortFunc(free, func(a, b Var) int {
		return int(a.Name) - int(b.Name)
	})
	return free
}

// AlphaEqual reports whether a and b are equal up to renaming of bound
// variables. Free variables must match by name.
func AlphaEqual(a, b Term) bool {
	return canonical(a).equal(canonical(b))
}

// canonicalTerm mirrors Term with bound names replaced by binder depth so
// that alpha-equivalent terms compare equal.
type canonicalTerm struct {
	kind  byte // 'f' free var, 'b' bound var, 'l' abs, 'a' app
	name  rune
	index int
	left  *canonicalTerm
	right *canonicalTerm
}

func (c *canonicalTerm) equal(o *canonicalTerm) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.kind == o.kind && c.name == o.name && c.index == o.index &&
		c.left.equal(o.left) && c.right.equal(o.right)
}

func canonical(t Term) *canonicalTerm {
	var walk func(t Term, scope []Var) *canonicalTerm
	walk = func(t Term, scope []Var) *canonicalTerm {
		switch v := t.(type) {
		case Var:
			// innermost binder wins
			for i := len(scope) - 1; i >= 0; i-- {
				if scope[i] == v {
					return &canonicalTerm{kind: 'b', index: len(scope) - 1 - i}
				}
			}
			return &canonicalTerm{kind: 'f', name: v.Name}
		case Abs:
			return &canonicalTerm{kind: 'l', left: walk(v.Body, append(slices.Clip(scope), v.Param))}
		case App:
			return &canonicalTerm{kind: 'a', left: walk(v.Fun, scope), right: walk(v.Arg, scope)}
		default:
			return nil
		}
	}
	return walk(t, nil)
}
