// Package catalog fetches the champion roster from Riot's Data Dragon CDN.
// The catalog is read-only to the rest of the tool: the progress layer keys
// off champion ids and tolerates ids that no longer resolve here.
package catalog

import (
	"slices"
)

// Champion is one catalog entry as served by Data Dragon.
type Champion struct {
	ID           string   `json:"id"`
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Blurb        string   `json:"blurb"`
	Tags         []string `json:"tags"`
	ResourceType string   `json:"partype"`
	Difficulty   int      `json:"difficulty"`
	ImageFile    string   `json:"imageFile"`
}

// AllTags returns the sorted set of game-provided class tags present in the
// given roster.
func AllTags(champs []Champion) []string {
	seen := map[string]bool{}
	var tags []string
	for _, c := range champs {
		for _, t := range c.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return tags
}

// AllResourceTypes returns the sorted set of resource types (mana, energy,
// rage, ...) present in the given roster.
func AllResourceTypes(champs []Champion) []string {
	seen := map[string]bool{}
	var types []string
	for _, c := range champs {
		if c.ResourceType != "" && !seen[c.ResourceType] {
			seen[c.ResourceType] = true
			types = append(types, c.ResourceType)
		}
	}
	slices.Sort(types)
	return types
}
