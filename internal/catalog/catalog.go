// Package catalog consolidates the streams of all input files into one
// deduplicated list of user-selectable entries.
package catalog

import (
	"strconv"
	"strings"

	"filmcompressor/internal/model"
)

// Membership records which input files carry a catalog entry.
// Files holds 1-based indices in input order and is nil when All is set.
type Membership struct {
	All   bool
	Files []int
}

func (m Membership) String() string {
	if m.All {
		return "all"
	}
	idx := make([]string, len(m.Files))
	for i, f := range m.Files {
		idx[i] = strconv.Itoa(f)
	}
	return strings.Join(idx, ",")
}

// Setting is one distinct stream across the current input files.
type Setting struct {
	Stream     model.Stream
	Membership Membership
	Enabled    bool
	Default    bool
}

// Catalog is the ordered set of distinct streams, in first-seen order.
type Catalog struct {
	Settings []Setting
}

// Policy decides what happens to user flags when the file list changes.
type Policy int

const (
	// PolicyReset rebuilds enabled/default from probe data.
	PolicyReset Policy = iota
	// PolicyPreserve keeps enabled/default for streams that were already listed.
	PolicyPreserve
)

// Recompute builds the catalog from scratch. New entries start enabled with the
// probe's default flag.
func Recompute(files []model.InputFile) Catalog {
	var c Catalog
	for _, f := range files {
		for _, s := range f.Streams {
			if _, ok := c.Lookup(s); ok {
				continue
			}
			c.Settings = append(c.Settings, Setting{
				Stream:  s,
				Enabled: true,
				Default: s.Default,
			})
		}
	}
	for i := range c.Settings {
		c.Settings[i].Membership = membership(files, c.Settings[i].Stream)
	}
	return c
}

// Rebuild recomputes the catalog for files, carrying flags over from prev
// when policy is PolicyPreserve.
func Rebuild(files []model.InputFile, prev Catalog, policy Policy) Catalog {
	next := Recompute(files)
	if policy != PolicyPreserve {
		return next
	}
	for i := range next.Settings {
		j, ok := prev.Lookup(next.Settings[i].Stream)
		if !ok {
			continue
		}
		next.Settings[i].Enabled = prev.Settings[j].Enabled
		next.Settings[i].Default = prev.Settings[j].Default
	}
	return next
}

func membership(files []model.InputFile, s model.Stream) Membership {
	var idx []int
	for i, f := range files {
		if f.Contains(s) {
			idx = append(idx, i+1)
		}
	}
	if len(idx) == len(files) {
		return Membership{All: true}
	}
	return Membership{Files: idx}
}

// Len returns the number of entries.
func (c Catalog) Len() int { return len(c.Settings) }

// Lookup returns the index of the entry equal to s.
func (c Catalog) Lookup(s model.Stream) (int, bool) {
	for i, e := range c.Settings {
		if e.Stream.Equal(s) {
			return i, true
		}
	}
	return -1, false
}

// ToggleEnabled flips the enabled flag of entry i.
func (c *Catalog) ToggleEnabled(i int) {
	if i < 0 || i >= len(c.Settings) {
		return
	}
	c.Settings[i].Enabled = !c.Settings[i].Enabled
}

// ToggleDefault flips the default flag of entry i after clearing it on every
// other entry of the same kind, so each kind has at most one default.
func (c *Catalog) ToggleDefault(i int) {
	if i < 0 || i >= len(c.Settings) {
		return
	}
	kind := c.Settings[i].Stream.Kind()
	for j := range c.Settings {
		if j != i && c.Settings[j].Stream.Kind() == kind {
			c.Settings[j].Default = false
		}
	}
	c.Settings[i].Default = !c.Settings[i].Default
}
