// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package taxonomy implements pattern matching for taxonomic rank
// phrases ("Ordem <Latin> <português>", "Família <Latin> <português>")
// and the ordered name mappings they produce.
package taxonomy

import (
	"regexp"
)

// Rank keywords as they appear in the source documents. Matching is
// case-sensitive: "ordem" is prose, "Ordem" is a rank heading.
const (
	OrderKeyword  = "Ordem"
	FamilyKeyword = "Família"
)

// Match is a single rank phrase occurrence
type Match struct {
	Latin      string // scientific name, first capture group
	Portuguese string // common name, second capture group
}

// RankPattern matches "<Keyword> <Latin> <português>" phrases.
// The Latin name is one or more ASCII letters; the Portuguese common
// name is lowercase letters including the accented set á é í ó ú ã õ ç.
type RankPattern struct {
	Keyword string
	regex   *regexp.Regexp
}

// NewRankPattern creates a pattern for the given rank keyword
func NewRankPattern(keyword string) *RankPattern {
	return &RankPattern{
		Keyword: keyword,
		regex:   regexp.MustCompile(regexp.QuoteMeta(keyword) + `\s+([A-Za-z]+)\s+([a-záéíóúãõç]+)`),
	}
}

// NewOrderPattern returns the pattern for "Ordem" phrases
func NewOrderPattern() *RankPattern {
	return NewRankPattern(OrderKeyword)
}

// NewFamilyPattern returns the pattern for "Família" phrases
func NewFamilyPattern() *RankPattern {
	return NewRankPattern(FamilyKeyword)
}

// FindAll returns every non-overlapping match in left-to-right order
func (p *RankPattern) FindAll(text string) []Match {
	groups := p.regex.FindAllStringSubmatch(text, -1)
	if len(groups) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(groups))
	for _, group := range groups {
		matches = append(matches, Match{Latin: group[1], Portuguese: group[2]})
	}
	return matches
}

// Pair is one rendered mapping entry
type Pair struct {
	Latin      string
	Portuguese string
}

// NameMap is an insertion-ordered mapping from Latin scientific name to
// Portuguese common name. Setting an existing key overwrites the value
// but keeps the key's original position (last match wins).
type NameMap struct {
	keys   []string
	values map[string]string
}

// NewNameMap creates an empty name mapping
func NewNameMap() *NameMap {
	return &NameMap{values: make(map[string]string)}
}

// Set records a Latin → Portuguese mapping
func (m *NameMap) Set(latin, portuguese string) {
	if _, exists := m.values[latin]; !exists {
		m.keys = append(m.keys, latin)
	}
	m.values[latin] = portuguese
}

// Get returns the Portuguese name for a Latin key
func (m *NameMap) Get(latin string) (string, bool) {
	value, ok := m.values[latin]
	return value, ok
}

// Len returns the number of entries
func (m *NameMap) Len() int {
	return len(m.keys)
}

// Pairs returns the entries in insertion order
func (m *NameMap) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m.keys))
	for _, latin := range m.keys {
		pairs = append(pairs, Pair{Latin: latin, Portuguese: m.values[latin]})
	}
	return pairs
}
