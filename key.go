package toml

// KeyKind tags a node in the AST, per spec.md §3's Key variant list.
type KeyKind int

const (
	KindKey KeyKind = iota
	KindKeyLeaf
	KindTable
	KindTableLeaf
	KindArrayTable
)

func (k KeyKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindKeyLeaf:
		return "key-leaf"
	case KindTable:
		return "table"
	case KindTableLeaf:
		return "table-leaf"
	case KindArrayTable:
		return "array-table"
	default:
		return "unknown"
	}
}

// Key is a node in the AST. Every node owns its subkeys exclusively
// (invariant 5); there are no parent back-pointers, per the "avoid
// parent back-pointers" design note in spec.md §9.
type Key struct {
	Kind  KeyKind
	ID    string
	Value *Value

	subkeys map[string]*Key
	order   []string // insertion order, followed by Subkeys and Format (Dump's JSON keys are sorted)

	idx int // ArrayTable: index into Value.Array of the active row
}

// NewRoot constructs the synthetic root key, always Table/"root" per
// invariant 1.
func NewRoot() *Key {
	return &Key{Kind: KindTable, ID: "root", subkeys: make(map[string]*Key)}
}

func newKeyNode(kind KeyKind, id string) *Key {
	return &Key{Kind: kind, ID: id, subkeys: make(map[string]*Key)}
}

// Lookup retrieves a named immediate subkey, per the `lookup` external
// interface in spec.md §6.
func (k *Key) Lookup(id string) (*Key, bool) {
	if k == nil || k.subkeys == nil {
		return nil, false
	}
	child, ok := k.subkeys[id]
	return child, ok
}

// Subkeys returns the node's children in insertion order. The map itself
// is never exposed so callers cannot violate exclusive ownership.
func (k *Key) Subkeys() []*Key {
	out := make([]*Key, 0, len(k.order))
	for _, id := range k.order {
		out = append(out, k.subkeys[id])
	}
	return out
}

func (k *Key) insert(child *Key) error {
	if len(child.ID) > maxIdentifierLength {
		return decodeErr(0, 0, "identifier %q exceeds %d byte cap", child.ID, maxIdentifierLength)
	}
	if k.subkeys == nil {
		k.subkeys = make(map[string]*Key)
	}
	if len(k.subkeys) >= maxSubkeys {
		if _, exists := k.subkeys[child.ID]; !exists {
			return decodeErr(0, 0, "subkey count exceeds %d cap", maxSubkeys)
		}
	}
	if _, exists := k.subkeys[child.ID]; !exists {
		k.order = append(k.order, child.ID)
	}
	k.subkeys[child.ID] = child
	return nil
}

// keysCompatible implements the redefinition-compatibility table from
// spec.md §4.3, grounded on original_source's
// _mytoml_value_keys_compatible. existing is the kind of the already
// present subkey; incoming is the kind of the newly parsed one.
func keysCompatible(existing, incoming KeyKind) bool {
	switch existing {
	case KindKeyLeaf:
		return false
	case KindTableLeaf:
		return incoming != KindTableLeaf
	default:
		// Key, Table, ArrayTable all accept any incoming kind; Table's
		// one-time upgrade to TableLeaf is performed by the caller
		// (addSubkey below), not by this predicate.
		return true
	}
}

// addSubkey attaches or merges child under k according to the
// redefinition-compatibility table, returning the node subsequent
// statements should attach to (which may be the pre-existing node, not
// child itself). line/col are only used for the diagnostic on rejection.
func (k *Key) addSubkey(child *Key, line, col int) (*Key, error) {
	// A subkey of an ArrayTable node belongs to its active row, not the
	// ArrayTable node itself (original_source's _mytoml_value_add_sub_key
	// redirects into key->value->arr[key->idx]->data). This is what lets
	// "[[fruit]]\n...\n[fruit.physical]" (or "fruit.physical = 1") attach
	// "physical" to the current row instead of the ArrayTable node.
	if k.Kind == KindArrayTable {
		row := k.activeRow()
		if row == nil {
			return nil, decodeErr(line, col, "array-of-tables %q has no active row", k.ID)
		}
		return row.addSubkey(child, line, col)
	}

	existing, found := k.subkeys[child.ID]
	if !found {
		if err := k.insert(child); err != nil {
			return nil, err
		}
		return child, nil
	}

	if !keysCompatible(existing.Kind, child.Kind) {
		return nil, redefineErr(line, col, "cannot redefine %q (%s) as %s", child.ID, existing.Kind, child.Kind)
	}

	// Table -> TableLeaf upgrade happens exactly once: re-opening "[a.b]"
	// after "[a]" implicitly created b as a Table.
	if existing.Kind == KindTable && child.Kind == KindTableLeaf {
		existing.Kind = KindTableLeaf
		return existing, nil
	}

	if existing.Kind == KindArrayTable && child.Kind == KindArrayTable {
		return existing, nil // driver appends a new row and bumps idx
	}

	return existing, nil
}

// activeRow returns the InlineTable key node for the array-of-tables'
// currently active row (the one that absorbs subsequent key-values).
func (k *Key) activeRow() *Key {
	if k.Kind != KindArrayTable || k.Value == nil || k.Value.Kind != KindArray {
		return nil
	}
	if k.idx < 0 || k.idx >= len(k.Value.Array) {
		return nil
	}
	return k.Value.Array[k.idx].Table
}

// appendRow allocates a new InlineTable row in an ArrayTable's Value and
// makes it the active row, per spec.md §4.3's "ArrayTable append" rule
// and invariant 3.
func (k *Key) appendRow() (*Key, error) {
	if k.Value == nil {
		k.Value = newArrayValue(nil)
	}
	if len(k.Value.Array) >= maxArrayLength {
		return nil, decodeErr(0, 0, "array-of-tables %q exceeds %d row cap", k.ID, maxArrayLength)
	}
	row := newKeyNode(KindKey, k.ID)
	k.Value.Array = append(k.Value.Array, newInlineTableValue(row))
	k.idx = len(k.Value.Array) - 1
	return row, nil
}

// Free releases the subtree, per the `free` external interface. Go's
// garbage collector reclaims memory on its own; this exists for API
// parity with the original's toml_free/post-order-destruction contract
// (see SPEC_FULL.md §5) and to break any accidental retention through a
// caller-held reference to a subtree.
func (k *Key) Free() {
	if k == nil {
		return
	}
	for _, child := range k.subkeys {
		child.Free()
	}
	k.subkeys = nil
	k.order = nil
	k.Value = nil
}

// Set attaches a scalar value as a KeyLeaf child, the single-threaded
// mutation convenience described in SPEC_FULL.md §4.13. It is not
// goroutine-safe; spec.md's non-goal excludes thread-safety, not
// mutation itself.
func (k *Key) Set(id string, v *Value) error {
	child := newKeyNode(KindKeyLeaf, id)
	child.Value = v
	_, err := k.addSubkey(child, 0, 0)
	return err
}

// Delete removes an immediate subkey, returning whether one was present.
func (k *Key) Delete(id string) bool {
	if _, ok := k.subkeys[id]; !ok {
		return false
	}
	delete(k.subkeys, id)
	for i, o := range k.order {
		if o == id {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	return true
}

// Append adds a pre-built InlineTable row to an ArrayTable key and makes
// it active, mirroring appendRow but usable from the mutation API.
func (k *Key) Append(table *Key) error {
	if k.Kind != KindArrayTable {
		return castErr("Append requires an ArrayTable node, got %s", k.Kind)
	}
	if k.Value == nil {
		k.Value = newArrayValue(nil)
	}
	if len(k.Value.Array) >= maxArrayLength {
		return decodeErr(0, 0, "array-of-tables %q exceeds %d row cap", k.ID, maxArrayLength)
	}
	k.Value.Array = append(k.Value.Array, newInlineTableValue(table))
	k.idx = len(k.Value.Array) - 1
	return nil
}
