package query

import (
	"maps"
	"sort"
)

// Parameters maps a named parameter (referenced as @name in a query) to its value.
type Parameters map[string]Value

// Args converts the parameters to the map gorm binds to @name placeholders.
func (p Parameters) Args() map[string]interface{} {
	args := make(map[string]interface{}, len(p))
	for name, value := range p {
		args[name] = value.Any()
	}
	return args
}

func (p Parameters) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builder accumulates named parameters. A later And with the same name
// overwrites the earlier value.
//
//	params := query.With("town", query.Uint(125)).And("type", query.String("sport")).Parameters()
type Builder struct {
	parameters Parameters
}

func With(name string, value Value) *Builder {
	return &Builder{parameters: Parameters{name: value}}
}

func (b *Builder) And(name string, value Value) *Builder {
	b.parameters[name] = value
	return b
}

// Parameters returns a copy of the accumulated set, so a query holding it
// is not affected by further And calls.
func (b *Builder) Parameters() Parameters {
	return maps.Clone(b.parameters)
}

// Named is a query registered by an entity type under a symbolic name.
// Where may reference parameters as @name.
type Named struct {
	Where string
	Order string
}
