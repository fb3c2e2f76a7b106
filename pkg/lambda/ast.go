package lambda

// Term represents a lambda calculus term.
//
// The set of implementations is closed: Var, Abs and App. Code that walks a
// Term switches over exactly these three.
type Term interface {
	String() string
	isTerm()
}

// Var represents a variable usage. Names are single lowercase ASCII letters.
type Var struct {
	Name rune
}

func (v Var) String() string {
	return string(v.Name)
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Param Var
	Body  Term
}

func (a Abs) String() string {
	return Untokenize(Unparse(a))
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return Untokenize(Unparse(a))
}

func (Var) isTerm() {}
func (Abs) isTerm() {}
func (App) isTerm() {}

// IsValidName reports whether r can name a variable.
func IsValidName(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// Next returns the cyclic successor of v: a→b→…→z→a.
func Next(v Var) Var {
	if v.Name == 'z' {
		return Var{Name: 'a'}
	}
	return Var{Name: v.Name + 1}
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x == y
	case Abs:
		y, ok := b.(Abs)
		return ok && x.Param == y.Param && Equal(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	default:
		return false
	}
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch v := t.(type) {
	case Var:
		return 1
	case Abs:
		return 1 + Size(v.Body)
	case App:
		return 1 + Size(v.Fun) + Size(v.Arg)
	default:
		return 0
	}
}
