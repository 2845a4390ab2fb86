package services

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CountryMap is the static airline-name to country-code association used
// when a bot has no stored country code. Entries are matched as
// case-insensitive substrings of the airline name, in sorted order so the
// result is deterministic.
type CountryMap struct {
	names []string
	codes map[string]string
}

// NewCountryMap builds a map from explicit associations.
func NewCountryMap(entries map[string]string) *CountryMap {
	names := make([]string, 0, len(entries))
	codes := make(map[string]string, len(entries))
	for name, code := range entries {
		lower := strings.ToLower(name)
		names = append(names, lower)
		codes[lower] = code
	}
	sort.Strings(names)
	return &CountryMap{names: names, codes: codes}
}

// LoadCountryMap reads the associations from a YAML file of
// "Airline Name: CC" pairs.
func LoadCountryMap(path string) (*CountryMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read country map: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse country map: %w", err)
	}

	return NewCountryMap(entries), nil
}

// CountryFor returns the country code for the first known airline name
// contained in the given name, or false when none matches.
func (m *CountryMap) CountryFor(airlineName string) (string, bool) {
	lower := strings.ToLower(airlineName)
	for _, name := range m.names {
		if strings.Contains(lower, name) {
			return m.codes[name], true
		}
	}
	return "", false
}

// Len returns the number of known associations.
func (m *CountryMap) Len() int {
	return len(m.names)
}
