// Package styles holds the static style sheets applied to web components.
//
// Sheets are plain values: a root block plus ordered rules keyed by the
// structural region they target. Every selector is scoped under a class
// generated from the sheet content, so two components never collide.
package styles

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Decl is shorthand for building a Declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// Rule applies declarations to one or more selectors relative to the root.
type Rule struct {
	Region       string
	Selectors    []string
	Declarations []Declaration
}

// Sheet is a component style sheet.
type Sheet struct {
	Name  string
	Root  []Declaration
	Rules []Rule
}

// ClassName returns the scoping class for the sheet: its name followed by a
// short hash of its content. The value is stable across processes.
func (s Sheet) ClassName() string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s.body("")))
	return fmt.Sprintf("%s-%08x", s.Name, h.Sum32())
}

// Region returns the rules targeting the named region, in sheet order.
func (s Sheet) Region(name string) []Rule {
	var rules []Rule
	for _, r := range s.Rules {
		if r.Region == name {
			rules = append(rules, r)
		}
	}
	return rules
}

// Regions returns the distinct region names in first-seen order.
func (s Sheet) Regions() []string {
	seen := make(map[string]bool, len(s.Rules))
	names := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		if !seen[r.Region] {
			seen[r.Region] = true
			names = append(names, r.Region)
		}
	}
	return names
}

// CSS renders the sheet with every selector scoped under ClassName.
func (s Sheet) CSS() string {
	return s.body("." + s.ClassName())
}

// RegionCSS renders only the rules of the named regions, in sheet order,
// still scoped under the full sheet's ClassName. The root block is omitted.
func (s Sheet) RegionCSS(names ...string) string {
	subset := Sheet{Name: s.Name}
	for _, name := range names {
		subset.Rules = append(subset.Rules, s.Region(name)...)
	}
	return subset.body("." + s.ClassName())
}

func (s Sheet) body(scope string) string {
	var b strings.Builder

	if len(s.Root) > 0 {
		root := scope
		if root == "" {
			root = "&"
		}
		writeBlock(&b, root, s.Root)
	}

	for _, r := range s.Rules {
		selectors := make([]string, 0, len(r.Selectors))
		for _, sel := range r.Selectors {
			if scope == "" {
				selectors = append(selectors, sel)
				continue
			}
			selectors = append(selectors, scope+" "+sel)
		}
		writeBlock(&b, strings.Join(selectors, ", "), r.Declarations)
	}

	return b.String()
}

func writeBlock(b *strings.Builder, selector string, decls []Declaration) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}

// Bundle concatenates the CSS of the given sheets in order.
func Bundle(sheets ...Sheet) string {
	parts := make([]string, 0, len(sheets))
	for _, s := range sheets {
		parts = append(parts, s.CSS())
	}
	return strings.Join(parts, "\n")
}
