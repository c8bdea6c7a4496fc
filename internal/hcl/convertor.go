package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/geneloader/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeUserValues evaluates every attribute of a `user` block into a
// setting value. Only strings and whole numbers are allowed.
func decodeUserValues(body hcl.Body) (map[string]config.Value, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string]config.Value, len(attrs))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		v, err := toValue(val)
		if err != nil {
			return nil, fmt.Errorf("user setting %q: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}

// toValue converts a cty.Value into a config.Value.
func toValue(val cty.Value) (config.Value, error) {
	if val.IsNull() {
		return config.Value{}, fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return config.Value{}, fmt.Errorf("value must be known")
	}

	switch val.Type() {
	case cty.String:
		return config.StringValue(val.AsString()), nil
	case cty.Number:
		var n int
		if err := gocty.FromCtyValue(val, &n); err != nil {
			return config.Value{}, fmt.Errorf("cannot convert number: %w", err)
		}
		return config.IntValue(n), nil
	default:
		return config.Value{}, fmt.Errorf("unsupported type %s, expected string or number", val.Type().FriendlyName())
	}
}
