// internal/builder/structs.go
package builder

import (
	"github.com/sebastian-peter/tscfg/internal/config"
	"github.com/sebastian-peter/tscfg/internal/keys"
	"github.com/sebastian-peter/tscfg/internal/model"
)

// memberStruct is the structural scaffolding built before types are
// assigned: a name, ordered members, and the `@define` directive found
// on the key, if any. A leaf is a struct with no members.
type memberStruct struct {
	name    string
	names   []string
	members map[string]*memberStruct
	define  model.DefineCase
}

func newMemberStruct(name string) *memberStruct {
	return &memberStruct{name: name, members: make(map[string]*memberStruct)}
}

// put attaches child under name, keeping first insertion order.
func (m *memberStruct) put(name string, child *memberStruct) {
	if _, ok := m.members[name]; !ok {
		m.names = append(m.names, name)
	}
	m.members[name] = child
}

// isLeaf reports whether the struct has no members.
func (m *memberStruct) isLeaf() bool {
	return len(m.names) == 0
}

// structsFromEntries folds the flat `path -> value` entry set of cfg
// into a nested struct tree and returns the root. Intermediate objects
// are created on demand while walking each leaf's ancestor chain toward
// the root.
func structsFromEntries(cfg *config.Config) *memberStruct {
	byPath := map[string]*memberStruct{"": newMemberStruct("")}
	for _, e := range cfg.EntrySet() {
		leaf := newMemberStruct(keys.SimpleOf(e.Path))
		byPath[e.Path] = leaf
		attachToParent(byPath, e.Path, leaf)
	}
	return byPath[""]
}

// attachToParent ensures the parent struct of path exists, attaches
// child under its simple name, and recurses toward the root for every
// newly created ancestor.
func attachToParent(byPath map[string]*memberStruct, path string, child *memberStruct) {
	parentPath := keys.ParentOf(path)
	parent, ok := byPath[parentPath]
	if !ok {
		parent = newMemberStruct(keys.SimpleOf(parentPath))
		byPath[parentPath] = parent
	}
	parent.put(keys.SimpleOf(path), child)
	if !ok && parentPath != "" {
		attachToParent(byPath, parentPath, parent)
	}
}
