package resolve

import (
	"cloudscribe/ir"
	"fmt"
)

// Flags records the control context a scope sits in.  Flags are inherited by
// child scopes unless explicitly cleared.
type Flags uint8

// Enumeration of scope flags
const (
	InLoop Flags = 1 << iota
	InFunction
	InTask
)

// Scope is one level of the lexical scope chain used during analysis.  Scopes
// never outlive the analysis that created them.
type Scope struct {
	parent *Scope
	locals map[string]ir.Binding
	flags  Flags

	// readOnly marks the universe: nothing may be declared in it once it has
	// been built
	readOnly bool
}

// DuplicateDeclarationError is returned when a name is declared twice in the
// same scope
type DuplicateDeclarationError struct {
	Name string
}

func (dde *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("Identifier %s already declared", dde.Name)
}

// NewUniverse creates the root scope holding the given intrinsic bindings.  A
// new universe should be created for every compilation run: the universe is
// never modified after construction so it may be shared by concurrent runs,
// but the intrinsics it holds belong to the run that created them.
func NewUniverse(intrinsics ...ir.Binding) *Scope {
	u := &Scope{locals: make(map[string]ir.Binding, len(intrinsics))}
	for _, b := range intrinsics {
		u.locals[b.BindingName()] = b
	}

	u.readOnly = true
	return u
}

// Child creates a new scope nested in `s`.  The child inherits the flags of
// its parent; `set` flags are then added and `clear` flags removed.
func (s *Scope) Child(set, clear Flags) *Scope {
	return &Scope{
		parent: s,
		locals: make(map[string]ir.Binding),
		flags:  (s.flags | set) &^ clear,
	}
}

// Declare binds `name` in this scope.  It fails if the name is already bound
// in this scope; names from enclosing scopes may be shadowed.
func (s *Scope) Declare(name string, b ir.Binding) error {
	if s.readOnly {
		return fmt.Errorf("cannot declare %s in the universe scope", name)
	}

	if _, ok := s.locals[name]; ok {
		return &DuplicateDeclarationError{Name: name}
	}

	s.locals[name] = b
	return nil
}

// Lookup finds the nearest binding of `name`, searching from this scope
// outwards to the universe
func (s *Scope) Lookup(name string) (ir.Binding, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if b, ok := scope.locals[name]; ok {
			return b, true
		}
	}

	return nil, false
}

// Flags returns the control context flags of the scope
func (s *Scope) Flags() Flags {
	return s.flags
}

// Has reports whether any of the given flags is set on the scope
func (s *Scope) Has(f Flags) bool {
	return s.flags&f != 0
}

// Parent returns the enclosing scope (nil for the universe)
func (s *Scope) Parent() *Scope {
	return s.parent
}
