package models

import "net/url"

// FilterCriteria holds the user-selected constraints for a catalog view.
// Empty fields mean the constraint is not set.
type FilterCriteria struct {
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	Search   string `json:"q,omitempty"`
}

// IsZero reports whether no constraint is set
func (c FilterCriteria) IsZero() bool {
	return c.Category == "" && c.Status == "" && c.Search == ""
}

// Values encodes the criteria as query parameters (category, status, q)
func (c FilterCriteria) Values() url.Values {
	v := url.Values{}
	if c.Category != "" {
		v.Set("category", c.Category)
	}
	if c.Status != "" {
		v.Set("status", c.Status)
	}
	if c.Search != "" {
		v.Set("q", c.Search)
	}
	return v
}
