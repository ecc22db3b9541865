// internal/builder/namespace.go
package builder

import "github.com/sebastian-peter/tscfg/internal/model"

// namespace is the lexically scoped registry of named defines: a linked
// stack of scopes, one per object under construction. Lookup walks
// outward; registration always writes into the current scope.
type namespace struct {
	parent *namespace
	name   string // simple name of the object this scope belongs to
	locals map[string]nsEntry
}

type nsEntry struct {
	t        model.Type
	isParent bool
}

// rootNamespace creates the outermost scope, fresh per build.
func rootNamespace() *namespace {
	return &namespace{locals: make(map[string]nsEntry)}
}

// extend opens a child scope for the named object.
func (n *namespace) extend(name string) *namespace {
	return &namespace{parent: n, name: name, locals: make(map[string]nsEntry)}
}

// addDefine records a named type in the current scope.
func (n *namespace) addDefine(name string, t model.Type, isParent bool) {
	n.locals[name] = nsEntry{t: t, isParent: isParent}
}

// resolveDefine looks a name up in the current scope and then each
// enclosing one, returning the first match.
func (n *namespace) resolveDefine(name string) (model.Type, bool) {
	for scope := n; scope != nil; scope = scope.parent {
		if e, ok := scope.locals[name]; ok {
			return e.t, true
		}
	}
	return nil, false
}

// abstractDefine resolves a name iff it was recorded as a parent class.
func (n *namespace) abstractDefine(name string) (*model.AbstractObjectType, bool) {
	for scope := n; scope != nil; scope = scope.parent {
		if e, ok := scope.locals[name]; ok {
			if abs, isAbs := e.t.(*model.AbstractObjectType); isAbs && e.isParent {
				return abs, true
			}
			return nil, false
		}
	}
	return nil, false
}

// isAbstractClassDefine reports whether name resolves to a parent class.
func (n *namespace) isAbstractClassDefine(name string) bool {
	_, ok := n.abstractDefine(name)
	return ok
}
