// internal/builder/builder.go
package builder

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sebastian-peter/tscfg/internal/config"
	"github.com/sebastian-peter/tscfg/internal/ctxlog"
	"github.com/sebastian-peter/tscfg/internal/keys"
	"github.com/sebastian-peter/tscfg/internal/model"
	"github.com/sebastian-peter/tscfg/internal/typespec"
)

// Options configures a Builder.
type Options struct {
	// AssumeAllRequired forces every field to be required with no
	// default, regardless of DSL or comment hints.
	AssumeAllRequired bool
}

// Builder runs model builds. Each Build starts from a fresh namespace
// and warning buffer, so one Builder may be reused sequentially;
// independent Builders may run in parallel.
type Builder struct {
	opts     Options
	warnings []model.Warning
}

// New creates a Builder.
func New(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Build derives the typed model for an entire document.
func (b *Builder) Build(ctx context.Context, cfg *config.Config) (*model.BuildResult, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting model build.")

	b.warnings = nil
	root, err := b.fromConfig(ctx, rootNamespace(), cfg, "")
	if err != nil {
		return nil, err
	}

	sort.SliceStable(b.warnings, func(i, j int) bool {
		return b.warnings[i].Line < b.warnings[j].Line
	})
	logger.Debug("Build: model build finished.", "root_members", root.Members.Len(), "warnings", len(b.warnings))
	return &model.BuildResult{Root: root, Warnings: b.warnings}, nil
}

func (b *Builder) warn(kind model.WarningKind, line int, source string) {
	b.warnings = append(b.warnings, model.Warning{Kind: kind, Line: line, Source: source})
}

// fromConfig synthesizes the ObjectType for one object of the document.
// path is the dotted path of the object, "" at the root; it appears in
// error messages only.
func (b *Builder) fromConfig(ctx context.Context, ns *namespace, cfg *config.Config, path string) (*model.ObjectType, error) {
	root := structsFromEntries(cfg)

	// Enrich each child with the @define directive from its comments.
	children := make([]*memberStruct, 0, len(root.names))
	for _, name := range root.names {
		s := root.members[name]
		cv := cfg.Value(name)
		dc, err := defineFromComments(name, cv.Origin().Comments)
		if err != nil {
			return nil, err
		}
		s.define = dc
		children = append(children, s)
	}

	// Defines first, so later siblings can resolve references to them.
	// The sort is stable: relative order within each group is document
	// order.
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].define != nil && children[j].define == nil
	})

	members := model.NewMembers()
	for _, s := range children {
		ann, err := b.buildMember(ctx, ns, cfg, s, path)
		if err != nil {
			return nil, err
		}
		if s.define != nil {
			ns.addDefine(s.name, ann.Type, s.define.IsParent())
		}
		members.Add(adjustName(s.name), ann)
	}

	// Abstract defines are parent-class placeholders; they are not
	// instantiated, so they do not surface as members of the object.
	concrete := model.NewMembers()
	for _, name := range members.Names() {
		ann := members.Get(name)
		if _, isAbstract := ann.Type.(*model.AbstractObjectType); isAbstract {
			continue
		}
		concrete.Add(name, ann)
	}
	return &model.ObjectType{Members: concrete}, nil
}

// buildMember computes the AnnType for one child struct.
func (b *Builder) buildMember(ctx context.Context, ns *namespace, cfg *config.Config, s *memberStruct, path string) (*model.AnnType, error) {
	name := s.name
	childPath := keys.Join(path, name)
	cv := cfg.Value(name)

	var (
		childType model.Type
		optional  bool
		def       *string
	)
	if s.isLeaf() {
		t, opt, d, err := b.leafType(ctx, ns, s, cv, childPath)
		if err != nil {
			return nil, err
		}
		childType, optional, def = t, opt, d
	} else {
		sub, err := b.fromConfig(ctx, ns.extend(name), cfg.Config(name), childPath)
		if err != nil {
			return nil, err
		}
		childType = sub
	}

	comments := cv.Origin().Comments
	var commentsOpt *string
	if len(comments) > 0 {
		joined := strings.Join(comments, "\n")
		commentsOpt = &joined
	}

	effOptional := optional || optionalFromComments(comments)
	effDefault := def
	if b.opts.AssumeAllRequired {
		effOptional = false
		effDefault = nil
	}

	parentMembers, err := b.parentClassMembers(ns, name, childPath, comments)
	if err != nil {
		return nil, err
	}

	joined := ""
	if commentsOpt != nil {
		joined = *commentsOpt
	}
	// An object whose comments declare `@define abstract` becomes a
	// parent class rather than a concrete object.
	if obj, ok := childType.(*model.ObjectType); ok &&
		isParentComments(joined) && strings.Contains(joined, "@define abstract") {
		childType = &model.AbstractObjectType{Members: obj.Members}
	}
	// A list annotated as an enum enumerates its own elements.
	if _, ok := childType.(*model.ListType); ok &&
		isEnumComments(joined) && cv.Kind() == config.ListKind {
		childType = enumTypeFromList(cv)
	}

	return &model.AnnType{
		Type:               childType,
		Optional:           effOptional,
		Default:            effDefault,
		Comments:           commentsOpt,
		ParentClassMembers: parentMembers,
	}, nil
}

// leafType infers the type of a leaf value, dispatching on its raw kind.
func (b *Builder) leafType(ctx context.Context, ns *namespace, s *memberStruct, cv *config.Value, path string) (model.Type, bool, *string, error) {
	switch cv.Kind() {
	case config.StringKind:
		valueString := escapeString(cv.Unwrapped())
		if t, ok := ns.resolveDefine(valueString); ok {
			return t, false, nil, nil
		}
		if spec, ok := typespec.Parse(valueString); ok {
			return spec.Type, spec.Optional, spec.Default, nil
		}
		// Not a type spec: the literal is an unknown default string.
		d := valueString
		return model.Basic(model.StringT), true, &d, nil

	case config.BoolKind:
		d := cv.Unwrapped()
		return model.Basic(model.BoolT), true, &d, nil

	case config.NumberKind:
		kind, err := numericKind(cv.Unwrapped())
		if err != nil {
			return nil, false, nil, &model.BuildError{Path: path, Reason: err.Error()}
		}
		d := cv.Unwrapped()
		return model.Basic(kind), true, &d, nil

	case config.ListKind:
		if _, isEnum := s.define.(model.EnumDefine); isEnum {
			return enumTypeFromList(cv), false, nil, nil
		}
		t, err := b.listType(ctx, ns, s.name, path, cv)
		if err != nil {
			return nil, false, nil, err
		}
		return t, false, nil, nil

	case config.ObjectKind:
		// Normally objects descend the non-leaf path; an object showing
		// up as a leaf still builds correctly.
		sub, err := b.fromConfig(ctx, ns.extend(s.name), config.New(cv), path)
		if err != nil {
			return nil, false, nil, err
		}
		return sub, false, nil, nil

	case config.NullKind:
		return nil, false, nil, &model.BuildError{Path: path, Reason: "unexpected null value"}

	default:
		return nil, false, nil, &model.BuildError{Path: path, Reason: fmt.Sprintf("unexpected value kind %s", cv.Kind())}
	}
}

// listType determines the element type of a list literal. Only the
// first element decides; additional elements produce a warning.
func (b *Builder) listType(ctx context.Context, ns *namespace, name, path string, cv *config.Value) (model.Type, error) {
	elems := cv.Elements()
	if len(elems) == 0 {
		return nil, &model.BuildError{Path: path, Reason: "list literal is empty; cannot determine the element type"}
	}
	if len(elems) > 1 {
		b.warn(model.MultElemListWarning, cv.Origin().Line(), cv.Render())
	}

	elem := elems[0]
	switch elem.Kind() {
	case config.StringKind:
		valueString := escapeString(elem.Unwrapped())
		if t, ok := ns.resolveDefine(valueString); ok {
			return &model.ListType{Elem: t}, nil
		}
		if spec, ok := typespec.Parse(valueString); ok {
			if spec.Optional {
				b.warn(model.OptListElemWarning, elem.Origin().Line(), valueString)
			}
			if spec.Default != nil {
				b.warn(model.DefaultListElemWarning, elem.Origin().Line(), valueString)
			}
			return &model.ListType{Elem: spec.Type}, nil
		}
		return &model.ListType{Elem: model.Basic(model.StringT)}, nil

	case config.BoolKind:
		return &model.ListType{Elem: model.Basic(model.BoolT)}, nil

	case config.NumberKind:
		kind, err := numericKind(elem.Unwrapped())
		if err != nil {
			return nil, &model.BuildError{Path: path, Reason: err.Error()}
		}
		return &model.ListType{Elem: model.Basic(kind)}, nil

	case config.ListKind:
		inner, err := b.listType(ctx, ns, name, path, elem)
		if err != nil {
			return nil, err
		}
		return &model.ListType{Elem: inner}, nil

	case config.ObjectKind:
		sub, err := b.fromConfig(ctx, ns.extend(name), config.New(elem), path)
		if err != nil {
			return nil, err
		}
		return &model.ListType{Elem: sub}, nil

	default:
		return nil, &model.BuildError{Path: path, Reason: "unexpected null list element"}
	}
}

// parentClassMembers resolves the `@define extends P` directive on a
// member, if present, to the member view of the abstract parent P.
func (b *Builder) parentClassMembers(ns *namespace, name, path string, comments []string) (*model.Members, error) {
	parent, ok := extendsTarget(comments)
	if !ok {
		return nil, nil
	}
	if abs, ok := ns.abstractDefine(parent); ok {
		return abs.Members, nil
	}
	if _, defined := ns.resolveDefine(parent); defined {
		return nil, &model.BuildError{
			Path:   path,
			Reason: fmt.Sprintf("%q extends %q, which is not an abstract define", name, parent),
		}
	}
	return nil, &model.BuildError{
		Path:   path,
		Reason: fmt.Sprintf("%q extends %q, which is not a visible define", name, parent),
	}
}

// enumTypeFromList enumerates the elements of a list literal marked
// `@define enum`.
func enumTypeFromList(cv *config.Value) *model.EnumObjectType {
	elems := cv.Elements()
	values := make([]string, len(elems))
	for i, e := range elems {
		values[i] = e.Unwrapped()
	}
	return &model.EnumObjectType{Values: values}
}

// numericKind picks the narrowest numeric type the literal fits in.
func numericKind(lit string) (model.BasicKind, error) {
	if _, err := strconv.ParseInt(lit, 10, 32); err == nil {
		return model.IntT, nil
	}
	if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return model.LongT, nil
	}
	if _, err := strconv.ParseFloat(lit, 64); err == nil {
		return model.DoubleT, nil
	}
	return 0, fmt.Errorf("cannot represent number %q", lit)
}

// adjustName finalizes a member name: names containing `$` stay
// verbatim; otherwise surrounding quotes from the source are stripped.
func adjustName(name string) string {
	if strings.Contains(name, "$") {
		return name
	}
	return strings.TrimSuffix(strings.TrimPrefix(name, `"`), `"`)
}

// escapeString escapes backslashes and double quotes so default string
// literals survive embedding in generated source.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
