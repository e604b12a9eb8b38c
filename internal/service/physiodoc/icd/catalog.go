// Package icd provides the diagnostic-code catalog: a fixed list of
// ICD-10 entries with substring search for autocomplete and exact-match
// lookup for resolving user-entered diagnoses. Pure lookup, no persistence,
// no ranking beyond code-before-label match priority.
package icd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Code is one diagnostic-code catalog entry.
type Code struct {
	Code       string `json:"code"`
	ShortLabel string `json:"short"`
	LongLabel  string `json:"long"`
}

// DefaultSearchLimit caps suggestion lists when the caller does not.
const DefaultSearchLimit = 15

// Catalog is an immutable, ordered diagnostic-code list.
type Catalog struct {
	entries []Code
}

func NewCatalog(entries []Code) *Catalog {
	return &Catalog{entries: entries}
}

// LoadCatalog reads a catalog from a JSON file holding an array of entries.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load diagnostic catalog: %w", err)
	}
	var entries []Code
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode diagnostic catalog: %w", err)
	}
	return NewCatalog(entries), nil
}

// Search returns catalog entries whose code, short label or long label
// contains the term as a case-insensitive substring, in catalog order,
// capped at limit (DefaultSearchLimit when limit <= 0). The result is empty
// but never nil for a blank term or no matches.
func (c *Catalog) Search(term string, limit int) []Code {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	out := []Code{}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return out
	}
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Code), term) ||
			strings.Contains(strings.ToLower(e.ShortLabel), term) ||
			strings.Contains(strings.ToLower(e.LongLabel), term) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Lookup resolves a user-entered candidate such as "M54.5 Kreuzschmerz".
// The first token is matched exactly against codes (case-insensitive)
// before the whole input is matched against short and long labels.
func (c *Catalog) Lookup(input string) (Code, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Code{}, false
	}
	first := strings.Fields(trimmed)[0]
	for _, e := range c.entries {
		if strings.EqualFold(e.Code, first) {
			return e, true
		}
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.ShortLabel, trimmed) || strings.EqualFold(e.LongLabel, trimmed) {
			return e, true
		}
	}
	return Code{}, false
}

// DefaultCatalog returns the built-in ICD-10-GM excerpt covering the
// diagnoses a physiotherapy practice documents most often.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Code{
		{Code: "M54.5", ShortLabel: "Kreuzschmerz", LongLabel: "Kreuzschmerz (Low back pain)"},
		{Code: "M54.2", ShortLabel: "Zervikalneuralgie", LongLabel: "Zervikalneuralgie (Cervicalgia)"},
		{Code: "M54.4", ShortLabel: "Lumboischialgie", LongLabel: "Lumboischialgie (Lumbago with sciatica)"},
		{Code: "M51.2", ShortLabel: "Bandscheibenverlagerung", LongLabel: "Sonstige näher bezeichnete Bandscheibenverlagerung"},
		{Code: "M75.1", ShortLabel: "Rotatorenmanschettensyndrom", LongLabel: "Läsionen der Rotatorenmanschette"},
		{Code: "M75.0", ShortLabel: "Frozen Shoulder", LongLabel: "Adhäsive Entzündung der Schultergelenkkapsel"},
		{Code: "M77.1", ShortLabel: "Epicondylitis lateralis", LongLabel: "Epicondylitis radialis humeri (Tennisellenbogen)"},
		{Code: "M17.9", ShortLabel: "Gonarthrose", LongLabel: "Gonarthrose, nicht näher bezeichnet"},
		{Code: "M16.9", ShortLabel: "Koxarthrose", LongLabel: "Koxarthrose, nicht näher bezeichnet"},
		{Code: "M23.5", ShortLabel: "Chronische Knieinstabilität", LongLabel: "Chronische Instabilität des Kniegelenkes"},
		{Code: "M25.5", ShortLabel: "Gelenkschmerz", LongLabel: "Schmerzen im Gelenk"},
		{Code: "M62.4", ShortLabel: "Muskelkontraktur", LongLabel: "Kontraktur eines Muskels"},
		{Code: "M79.1", ShortLabel: "Myalgie", LongLabel: "Myalgie (Muskelschmerz)"},
		{Code: "S83.5", ShortLabel: "Kreuzbandverletzung", LongLabel: "Verstauchung und Zerrung des Kniegelenkes mit Beteiligung des Kreuzbandes"},
		{Code: "S93.4", ShortLabel: "Sprunggelenkdistorsion", LongLabel: "Verstauchung und Zerrung des oberen Sprunggelenkes"},
		{Code: "T93.2", ShortLabel: "Folgen einer Fraktur", LongLabel: "Folgen sonstiger Frakturen der unteren Extremität"},
		{Code: "G54.0", ShortLabel: "Läsion Plexus brachialis", LongLabel: "Läsionen des Plexus brachialis"},
		{Code: "R26.8", ShortLabel: "Gangstörung", LongLabel: "Sonstige und nicht näher bezeichnete Störungen des Ganges und der Mobilität"},
		{Code: "M96.8", ShortLabel: "Z. n. Gelenkersatz", LongLabel: "Sonstige Krankheiten des Muskel-Skelett-Systems nach medizinischen Maßnahmen"},
		{Code: "M53.1", ShortLabel: "Zervikobrachial-Syndrom", LongLabel: "Zervikobrachial-Syndrom"},
	})
}
