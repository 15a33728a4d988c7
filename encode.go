package toml

import "fmt"

// FromTaggedJSON builds a *Key tree from the tagged-JSON shape Dump
// produces, completing what teacher's cmd/encoder/main.go left
// unfinished (its own comments read "Tables not yet supported" and
// "Arrays not yet supported") — see SPEC_FULL.md §4.12.
func FromTaggedJSON(data map[string]any) (*Key, error) {
	root := NewRoot()
	if err := populateFromJSON(root, data); err != nil {
		return nil, err
	}
	return root, nil
}

func populateFromJSON(container *Key, data map[string]any) error {
	for id, raw := range data {
		child, err := jsonEntryToKey(id, raw)
		if err != nil {
			return err
		}
		if _, err := container.addSubkey(child, 0, 0); err != nil {
			return err
		}
	}
	return nil
}

func jsonEntryToKey(id string, raw any) (*Key, error) {
	switch v := raw.(type) {
	case map[string]any:
		if typ, val, ok := taggedFields(v); ok {
			value, err := valueFromTagged(typ, val)
			if err != nil {
				return nil, err
			}
			leaf := newKeyNode(KindKeyLeaf, id)
			leaf.Value = value
			return leaf, nil
		}
		table := newKeyNode(KindTableLeaf, id)
		if err := populateFromJSON(table, v); err != nil {
			return nil, err
		}
		return table, nil
	case []any:
		return jsonArrayToKey(id, v)
	default:
		return nil, decodeErr(0, 0, "unsupported JSON value for key %q", id)
	}
}

// taggedFields reports whether m is a {"type": ..., "value": ...} leaf.
func taggedFields(m map[string]any) (string, string, bool) {
	if len(m) != 2 {
		return "", "", false
	}
	typ, ok1 := m["type"].(string)
	val, ok2 := m["value"].(string)
	return typ, val, ok1 && ok2
}

// jsonArrayToKey distinguishes a plain Array value from an array of
// tables (whose elements are all plain, untagged objects).
func jsonArrayToKey(id string, arr []any) (*Key, error) {
	if isArrayOfTables(arr) {
		at := newKeyNode(KindArrayTable, id)
		for _, elem := range arr {
			obj, _ := elem.(map[string]any)
			row, err := at.appendRow()
			if err != nil {
				return nil, err
			}
			if err := populateFromJSON(row, obj); err != nil {
				return nil, err
			}
		}
		return at, nil
	}

	elems := make([]*Value, 0, len(arr))
	for _, elem := range arr {
		v, err := jsonElementToValue(elem)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	leaf := newKeyNode(KindKeyLeaf, id)
	leaf.Value = newArrayValue(elems)
	return leaf, nil
}

func isArrayOfTables(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	for _, elem := range arr {
		obj, ok := elem.(map[string]any)
		if !ok {
			return false
		}
		if _, _, tagged := taggedFields(obj); tagged {
			return false
		}
	}
	return true
}

func jsonElementToValue(raw any) (*Value, error) {
	switch v := raw.(type) {
	case map[string]any:
		if typ, val, ok := taggedFields(v); ok {
			return valueFromTagged(typ, val)
		}
		table := newKeyNode(KindKey, "")
		if err := populateFromJSON(table, v); err != nil {
			return nil, err
		}
		return newInlineTableValue(table), nil
	case []any:
		elems := make([]*Value, 0, len(v))
		for _, e := range v {
			ev, err := jsonElementToValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return newArrayValue(elems), nil
	default:
		return nil, fmt.Errorf("unsupported array element of type %T", raw)
	}
}

func valueFromTagged(typ, val string) (*Value, error) {
	switch typ {
	case "string":
		return newStringValue(val), nil
	case "integer":
		return parseNumber(val, 0, 0)
	case "float":
		return parseFloatTagged(val)
	case "bool":
		return newBoolValue(val == "true"), nil
	case "datetime", "datetime-local", "date-local", "time-local":
		return parseDateTime(val, 0, 0)
	default:
		return nil, decodeErr(0, 0, "unknown tagged type %q", typ)
	}
}

func parseFloatTagged(val string) (*Value, error) {
	if v, ok := parseInfNan(val); ok {
		return v, nil
	}
	return parseNumber(val, 0, 0)
}
