package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Placeholder values for a freshly added product.
const (
	PlaceholderName        = "Nuevo Producto"
	PlaceholderDescription = "Descripción del producto..."
	PlaceholderImage       = "https://via.placeholder.com/300x220.png?text=Imagen"
)

// Editor produces new catalog values from edits. It never mutates its
// input and never touches persistence.
type Editor struct {
	Now func() time.Time
}

func NewEditor() *Editor { return &Editor{Now: time.Now} }

// SetAtPath returns a copy of c with the value addressed by path replaced.
// String segments select mapping keys, integer segments select sequence
// indexes. The editor does no schema validation beyond what the catalog
// types themselves require.
func (e *Editor) SetAtPath(c Catalog, path Path, value any) (Catalog, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrOutOfRange)
	}
	if path[0].isIdx {
		return nil, fmt.Errorf("%w: %s: catalog root is keyed by store id", ErrOutOfRange, path)
	}
	if path.isStoreID() {
		return nil, fmt.Errorf("%w: %s", ErrImmutableField, path)
	}
	if path.isProductPrice() {
		value = CoercePrice(value)
	}

	root, err := toTree(c)
	if err != nil {
		return nil, err
	}
	var cur any = root
	for i, seg := range path[:len(path)-1] {
		next, err := step(cur, seg)
		if err != nil {
			return nil, fmt.Errorf("%w at %s", err, path[:i+1])
		}
		cur = next
	}
	if err := assign(cur, path[len(path)-1], value); err != nil {
		return nil, fmt.Errorf("%w at %s", err, path)
	}

	out, err := fromTree(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, path, err)
	}
	if err := out.check(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, path, err)
	}
	return out, nil
}

// AddProduct appends a placeholder product to the store and returns it.
// Its id is the current time in ms, bumped until unique within the store.
func (e *Editor) AddProduct(c Catalog, storeID string) (Catalog, Product, error) {
	s, ok := c[storeID]
	if !ok {
		return nil, Product{}, fmt.Errorf("%w: %s", ErrStoreNotFound, storeID)
	}
	id := e.now().UnixMilli()
	for s.ProductIndex(id) >= 0 {
		id++
	}
	p := Product{
		ID:          id,
		Name:        PlaceholderName,
		Description: PlaceholderDescription,
		Price:       0,
		Image:       PlaceholderImage,
	}

	out := c.Clone()
	st := out[storeID]
	st.Products = append(st.Products, p)
	out[storeID] = st
	return out, p, nil
}

// RemoveProduct drops the product with productID from the store. A missing
// product is not an error.
func (e *Editor) RemoveProduct(c Catalog, storeID string, productID int64) (Catalog, error) {
	if _, ok := c[storeID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, storeID)
	}
	out := c.Clone()
	st := out[storeID]
	kept := st.Products[:0]
	for _, p := range st.Products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	st.Products = kept
	out[storeID] = st
	return out, nil
}

func (e *Editor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func step(cur any, seg Segment) (any, error) {
	switch node := cur.(type) {
	case map[string]any:
		if seg.isIdx {
			return nil, fmt.Errorf("%w: index %d into mapping", ErrOutOfRange, seg.index)
		}
		next, ok := node[seg.name]
		if !ok {
			return nil, fmt.Errorf("%w: no key %q", ErrOutOfRange, seg.name)
		}
		return next, nil
	case []any:
		if !seg.isIdx {
			return nil, fmt.Errorf("%w: key %q into sequence", ErrOutOfRange, seg.name)
		}
		if seg.index < 0 || seg.index >= len(node) {
			return nil, fmt.Errorf("%w: index %d of %d", ErrOutOfRange, seg.index, len(node))
		}
		return node[seg.index], nil
	default:
		return nil, fmt.Errorf("%w: %T is not traversable", ErrOutOfRange, cur)
	}
}

func assign(cur any, seg Segment, value any) error {
	switch node := cur.(type) {
	case map[string]any:
		if seg.isIdx {
			return fmt.Errorf("%w: index %d into mapping", ErrOutOfRange, seg.index)
		}
		node[seg.name] = value
		return nil
	case []any:
		if !seg.isIdx {
			return fmt.Errorf("%w: key %q into sequence", ErrOutOfRange, seg.name)
		}
		if seg.index < 0 || seg.index >= len(node) {
			return fmt.Errorf("%w: index %d of %d", ErrOutOfRange, seg.index, len(node))
		}
		node[seg.index] = value
		return nil
	default:
		return fmt.Errorf("%w: %T is not traversable", ErrOutOfRange, cur)
	}
}

// toTree converts c into its generic JSON shape. The result shares nothing
// with c.
func toTree(c Catalog) (map[string]any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tree := map[string]any{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func fromTree(tree map[string]any) (Catalog, error) {
	b, err := json.Marshal(tree)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var out Catalog
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		out = Catalog{}
	}
	return out, nil
}

var errDuplicateProduct = errors.New("duplicate product id")

// check restores the catalog invariants after a generic edit: store ids
// match their keys, product ids are unique per store and prices are
// non-negative.
func (c Catalog) check() error {
	for key, s := range c {
		if s.ID == "" {
			s.ID = key
		}
		if s.ID != key {
			return fmt.Errorf("store %q carries id %q", key, s.ID)
		}
		seen := make(map[int64]struct{}, len(s.Products))
		for i := range s.Products {
			p := &s.Products[i]
			if _, dup := seen[p.ID]; dup {
				return fmt.Errorf("%w %d in store %q", errDuplicateProduct, p.ID, key)
			}
			seen[p.ID] = struct{}{}
			p.Price = clampPrice(p.Price)
		}
		c[key] = s
	}
	return nil
}
