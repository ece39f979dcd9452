// Package taxonomy models the food classification tree: loading raw
// rows into nodes, resolving parent ids into direct references, and
// computing effective (possibly inherited) impact values.
package taxonomy

import (
	"sort"
	"strconv"
	"strings"

	"foodprint/internal/errors"
	"foodprint/internal/normalize"
)

// Row is a raw classification record as handed over by the dataset
// layer. All fields are unparsed strings; blank means absent for the
// optional ones.
type Row struct {
	ID       string // Required integer
	Name     string // Free-text classification name
	Impact   string // Optional nonnegative float, blank = inherited
	ParentID string // Optional integer, blank = root
}

// Lookup maps normalized classification names to their nodes
type Lookup map[string]*FoodClass

// Load parses raw rows into food class nodes keyed by id. Parent ids are
// stored unresolved; call ResolveParents before evaluating impacts.
// Malformed numeric fields fail immediately with PARSE_ERROR, never a
// silent default.
func Load(rows []Row) (map[int]*FoodClass, error) {
	byID := make(map[int]*FoodClass, len(rows))

	for _, row := range rows {
		id, err := strconv.Atoi(strings.TrimSpace(row.ID))
		if err != nil {
			return nil, errors.NewParseError("ID", row.ID, err)
		}

		var impact *float64
		if s := strings.TrimSpace(row.Impact); s != "" {
			value, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, errors.NewParseError("Impact / kg", row.Impact, err)
			}
			if value < 0 {
				return nil, errors.NewParseError("Impact / kg", row.Impact, nil)
			}
			impact = &value
		}

		parent := Root()
		if s := strings.TrimSpace(row.ParentID); s != "" {
			parentID, err := strconv.Atoi(s)
			if err != nil {
				return nil, errors.NewParseError("Parent ID", row.ParentID, err)
			}
			parent = Unresolved(parentID)
		}

		byID[id] = &FoodClass{
			ID:          id,
			Name:        normalize.Normalize(row.Name),
			ImpactPerKg: impact,
			Parent:      parent,
		}
	}

	return byID, nil
}

// ResolveParents rewrites raw parent ids into direct references in a
// single pass. Ids absent from the dataset stay Unresolved so the
// failure surfaces when the node's impact is actually requested, not at
// load time. Fails fast with CYCLE_DETECTED if the resolved graph
// contains a cycle.
func ResolveParents(byID map[int]*FoodClass) error {
	for _, fc := range byID {
		if parentID, ok := fc.Parent.RawID(); ok {
			if parent, found := byID[parentID]; found {
				fc.Parent = Resolved(parent)
			}
		}
	}
	return detectCycles(byID)
}

// walk states for cycle detection
const (
	unvisited uint8 = iota
	onPath
	done
)

func detectCycles(byID map[int]*FoodClass) error {
	states := make(map[int]uint8, len(byID))

	for _, fc := range byID {
		if states[fc.ID] != unvisited {
			continue
		}

		var path []int
		for node := fc; node != nil; {
			if states[node.ID] == done {
				break
			}
			if states[node.ID] == onPath {
				return errors.NewCycle(append(path, node.ID))
			}
			states[node.ID] = onPath
			path = append(path, node.ID)

			parent, ok := node.Parent.Node()
			if !ok {
				break
			}
			node = parent
		}

		for _, id := range path {
			states[id] = done
		}
	}

	return nil
}

// BuildLookup builds the normalized-name lookup used to match ingredient
// names, one entry per node. When two nodes normalize to the same name
// the node with the higher id wins; Duplicates exposes the collisions
// for diagnostics.
func BuildLookup(byID map[int]*FoodClass) Lookup {
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lookup := make(Lookup, len(byID))
	for _, id := range ids {
		fc := byID[id]
		lookup[fc.Name] = fc
	}
	return lookup
}

// Duplicates returns groups of nodes whose names normalize identically,
// a data-quality hazard since only one of them is reachable through the
// lookup. Groups are ordered by name, members by id.
func Duplicates(byID map[int]*FoodClass) [][]*FoodClass {
	byName := make(map[string][]*FoodClass)
	for _, fc := range byID {
		byName[fc.Name] = append(byName[fc.Name], fc)
	}

	names := make([]string, 0, len(byName))
	for name, group := range byName {
		if len(group) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	groups := make([][]*FoodClass, 0, len(names))
	for _, name := range names {
		group := byName[name]
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		groups = append(groups, group)
	}
	return groups
}
