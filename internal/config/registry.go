package config

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML embed.FS

// Registry holds the named search profiles for a run.
type Registry struct {
	Profiles []Profile `yaml:"profiles"`
}

// Profile is one immutable set of search filters. Empty optional filters
// are never sent to the API.
type Profile struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Keyword    string `yaml:"keyword,omitempty"`
	NAICSCode  string `yaml:"naics_code,omitempty"`
	NoticeType string `yaml:"notice_type,omitempty"` // o, p, k, r, s
	SetAside   string `yaml:"set_aside,omitempty"`   // SBA, 8a, HUBZone, SDVOSBC, WOSB
	PostedFrom string `yaml:"posted_from,omitempty"` // MM/DD/YYYY
	PostedTo   string `yaml:"posted_to,omitempty"`   // MM/DD/YYYY
	DaysBack   int    `yaml:"days_back,omitempty"`   // default 30
	MaxResults int    `yaml:"max_results,omitempty"` // default 500
	PageSize   int    `yaml:"page_size,omitempty"`   // default 100
}

// Tag returns the lowercased, underscore-normalized label used in output
// filenames: keyword, then NAICS code, then "all".
func (p Profile) Tag() string {
	tag := p.Keyword
	if tag == "" {
		tag = p.NAICSCode
	}
	if tag == "" {
		tag = "all"
	}
	return normalizeTag(tag)
}

// LoadRegistry reads profiles from path, falling back to the embedded
// defaults when path is empty or missing. Environment variables inside
// the YAML (e.g. ${SET_ASIDE}) are expanded before parsing.
func LoadRegistry(path string) (*Registry, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading profiles: %w", err)
		}
	} else {
		data, err = profilesYAML.ReadFile("profiles.yaml")
		if err != nil {
			return nil, fmt.Errorf("reading embedded profiles: %w", err)
		}
	}

	expanded := os.ExpandEnv(string(data))

	var reg Registry
	if err := yaml.Unmarshal([]byte(expanded), &reg); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	if len(reg.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles defined")
	}
	for i, p := range reg.Profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profile %d has no id", i)
		}
	}
	return &reg, nil
}

// Find returns the profile with the given ID, or nil.
func (r *Registry) Find(id string) *Profile {
	for i := range r.Profiles {
		if r.Profiles[i].ID == id {
			return &r.Profiles[i]
		}
	}
	return nil
}
