package query

import (
	"fmt"
	"strings"
)

// binding is an ordered variable list ready to hand to a prepared
// statement: the positional argument slice plus the tag string derived
// from it. Invariant: len(tags) == len(args), positionally matched.
type binding struct {
	tags string
	args []interface{}
}

// bindValues derives the bind type tag for each variable, in order, and
// packs tags and driver-shaped arguments into one binding. An invalid
// variable kind yields a *BindTypeError naming its position.
func bindValues(vars []Value) (binding, error) {
	var tags strings.Builder
	args := make([]interface{}, 0, len(vars))

	for i, v := range vars {
		tag, ok := v.Tag()
		if !ok {
			return binding{}, &BindTypeError{Position: i}
		}
		tags.WriteByte(tag)
		args = append(args, v.arg())
	}

	b := binding{tags: tags.String(), args: args}

	// Always equal by construction; kept as a defensive invariant.
	if len(b.tags) != len(b.args) {
		return binding{}, fmt.Errorf("tag count %d does not match value count %d", len(b.tags), len(b.args))
	}

	return b, nil
}
