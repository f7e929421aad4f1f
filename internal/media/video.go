package media

import "strings"

// VideoCandidate is one entry of a catalog video list.
type VideoCandidate struct {
	Name string `json:"name" yaml:"name"`
	Key  string `json:"key" yaml:"key"`
	Site string `json:"site,omitempty" yaml:"site,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// SelectTrailer returns the key of the first candidate whose lower-cased
// name contains "official" or "trailer". Later candidates are never looked
// at once a match is found.
func SelectTrailer(videos []VideoCandidate) (string, bool) {
	for _, v := range videos {
		name := strings.ToLower(v.Name)
		if strings.Contains(name, "official") || strings.Contains(name, "trailer") {
			return v.Key, true
		}
	}
	return "", false
}
