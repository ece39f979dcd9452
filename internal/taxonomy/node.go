package taxonomy

import "foodprint/internal/errors"

// parentKind discriminates the three states of a parent link
type parentKind uint8

const (
	parentRoot parentKind = iota
	parentUnresolved
	parentResolved
)

// ParentLink is a tagged variant for a food class parent reference:
// Root (no parent declared), Unresolved (parent id present but not found
// in the dataset), or Resolved (direct reference to another FoodClass).
// The zero value is Root.
type ParentLink struct {
	kind  parentKind
	rawID int
	node  *FoodClass
}

// Root returns a parent link for a node with no declared parent
func Root() ParentLink {
	return ParentLink{kind: parentRoot}
}

// Unresolved returns a parent link holding a raw, not yet resolved parent id
func Unresolved(id int) ParentLink {
	return ParentLink{kind: parentUnresolved, rawID: id}
}

// Resolved returns a parent link referencing another food class
func Resolved(node *FoodClass) ParentLink {
	return ParentLink{kind: parentResolved, node: node}
}

// IsRoot reports whether no parent was declared at all
func (p ParentLink) IsRoot() bool {
	return p.kind == parentRoot
}

// RawID returns the declared parent id while the link is unresolved
func (p ParentLink) RawID() (int, bool) {
	return p.rawID, p.kind == parentUnresolved
}

// Node returns the resolved parent food class
func (p ParentLink) Node() (*FoodClass, bool) {
	return p.node, p.kind == parentResolved
}

// FoodClass is a node in the food classification taxonomy. A node may
// carry a direct impact value or inherit one from an ancestor.
type FoodClass struct {
	ID          int        // Unique classification id
	Name        string     // Normalized classification name
	ImpactPerKg *float64   // Direct impact per kilogram, nil when inherited
	Parent      ParentLink // Rewritten exactly once by ResolveParents

	// Effective impact memoized on first successful lookup
	cached       bool
	cachedImpact float64
}

// EffectiveImpact returns the node's impact per kilogram, inheriting from
// the nearest ancestor with a direct value. The result is memoized per
// node, so recipes sharing ancestors do not recompute the chain.
//
// A dangling parent id fails with UNRESOLVED_PARENT; a chain that ends at
// a root without a direct value fails with MISSING_IMPACT. The latter
// names the node being evaluated, not the root that lacked the value.
func (fc *FoodClass) EffectiveImpact() (float64, error) {
	if fc.ImpactPerKg != nil {
		return *fc.ImpactPerKg, nil
	}
	if fc.cached {
		return fc.cachedImpact, nil
	}

	if parent, ok := fc.Parent.Node(); ok {
		impact, err := parent.EffectiveImpact()
		if err != nil {
			return 0, err
		}
		fc.cachedImpact = impact
		fc.cached = true
		return impact, nil
	}

	if parentID, ok := fc.Parent.RawID(); ok {
		return 0, errors.NewUnresolvedParent(parentID, fc.Name)
	}

	return 0, errors.NewMissingImpact(fc.ID, fc.Name)
}
