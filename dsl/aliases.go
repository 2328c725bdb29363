package dsl

import (
	serializers "github.com/fixdauto/simple-schema-serializers"
)

// aliasEntry binds a serializer and its registered default options to an
// alias name.
type aliasEntry struct {
	serializer serializers.Serializer
	defaults   serializers.Options
}

// builtinAliases returns the alias table every root definition starts from.
// Each name also registers a "name?" optional counterpart.
func builtinAliases() map[string]aliasEntry {
	m := map[string]aliasEntry{}
	reg := func(s serializers.Serializer, names ...string) {
		for _, n := range names {
			m[n] = aliasEntry{serializer: s}
			m[n+"?"] = aliasEntry{serializer: serializers.Optional(s)}
		}
	}
	reg(serializers.String(), "string")
	reg(serializers.Integer(), "integer")
	reg(serializers.Float(), "float", "decimal", "double")
	reg(serializers.Boolean(), "boolean", "bool")
	reg(serializers.Date(), "date")
	reg(serializers.DateTime(), "datetime")
	reg(serializers.ArbitraryHash(), "arbitrary_hash", "hash", "dict", "map")
	return m
}

func copyAliases(src map[string]aliasEntry) map[string]aliasEntry {
	out := make(map[string]aliasEntry, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// lookupAlias resolves a serializer reference: a Serializer value passes
// through, a string is looked up in the alias table.
func lookupAlias(aliases map[string]aliasEntry, ref any) (serializers.Serializer, serializers.Options, error) {
	switch t := ref.(type) {
	case serializers.Serializer:
		return t, nil, nil
	case string:
		e, ok := aliases[t]
		if !ok {
			return nil, nil, serializers.DeclErrf("unknown serializer alias %q", t)
		}
		return e.serializer, e.defaults, nil
	default:
		return nil, nil, serializers.DeclErrf("serializer reference must be a Serializer or alias name, got %T", ref)
	}
}
