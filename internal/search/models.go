// Package search is the Elasticsearch adapter for the protocol index. It
// builds the query bodies, runs them, and decodes responses into the hit
// shape the intelligence pipeline consumes.
package search

import "github.com/arthik444/procheck/internal/intelligence/resultannotator"

// Request describes one protocol search.
type Request struct {
	Query   string  `json:"query"`
	Size    int     `json:"size"`
	From    int     `json:"from"`
	Filters Filters `json:"filters"`
}

// Filters are the term filters supported by the protocol index.
type Filters struct {
	Region       []string `json:"region,omitempty"`
	Year         []string `json:"year,omitempty"`
	Organization []string `json:"organization,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Disease      []string `json:"disease,omitempty"`
}

// Result is the decoded search response.
type Result struct {
	Hits      []resultannotator.SearchHit `json:"hits"`
	TotalHits int64                       `json:"totalHits"`
	MaxScore  float64                     `json:"maxScore"`
	Took      int64                       `json:"took"`
}

// esResponse mirrors the subset of the Elasticsearch search response the
// adapter reads.
type esResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []struct {
			ID     string   `json:"_id"`
			Score  *float64 `json:"_score"`
			Source struct {
				Title        string   `json:"title"`
				Content      string   `json:"content"`
				Body         string   `json:"body"`
				Disease      string   `json:"disease"`
				Section      string   `json:"section"`
				Organization string   `json:"organization"`
				Tags         []string `json:"tags"`
			} `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
	Error *struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}
