// internal/model/define.go
package model

// DefineCase is the sealed sum of `@define` directive forms. A nil
// DefineCase means the key carried no directive.
type DefineCase interface {
	isDefine()
	// IsParent reports whether the directive introduces a parent class,
	// i.e. `@define abstract`.
	IsParent() bool
}

// PlainDefine is a bare `@define`: the object becomes a named, reusable
// type visible to later siblings.
type PlainDefine struct{}

func (PlainDefine) isDefine()      {}
func (PlainDefine) IsParent() bool { return false }

// AbstractDefine is `@define abstract`: the object becomes a parent
// class that is never instantiated at the root.
type AbstractDefine struct{}

func (AbstractDefine) isDefine()      {}
func (AbstractDefine) IsParent() bool { return true }

// ExtendsDefine is `@define extends <Parent>`: the object inherits the
// members of a previously declared abstract define.
type ExtendsDefine struct {
	Parent string
}

func (ExtendsDefine) isDefine()      {}
func (ExtendsDefine) IsParent() bool { return false }

// EnumDefine is `@define enum`: the key's list literal enumerates the
// values of a closed string set.
type EnumDefine struct{}

func (EnumDefine) isDefine()      {}
func (EnumDefine) IsParent() bool { return false }
