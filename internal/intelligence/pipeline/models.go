// Package pipeline orchestrates one intelligent search end to end: query
// analysis, protocol search, knowledge graph context, and result annotation,
// with an optional Redis response cache in front.
package pipeline

import (
	"github.com/arthik444/procheck/internal/intelligence/queryanalyzer"
	"github.com/arthik444/procheck/internal/intelligence/resultannotator"
	"github.com/arthik444/procheck/internal/search"
)

// SearchRequest is one intelligent-search call.
type SearchRequest struct {
	Query   string         `json:"query"`
	Size    int            `json:"size,omitempty"`
	Filters search.Filters `json:"filters,omitempty"`
}

// SearchResponse is the full pipeline output for one request.
type SearchResponse struct {
	RequestID           string                              `json:"requestId"`
	Query               string                              `json:"query"`
	EnhancedQuery       string                              `json:"enhancedQuery"`
	TotalHits           int64                               `json:"totalHits"`
	MaxScore            float64                             `json:"maxScore"`
	Took                int64                               `json:"took"`
	Hits                []resultannotator.AnnotatedHit      `json:"hits"`
	MedicalIntelligence resultannotator.MedicalIntelligence `json:"medicalIntelligence"`
	Cached              bool                                `json:"cached"`
}

// SuggestionsResponse carries analysis-only guidance for a query, without
// running a search.
type SuggestionsResponse struct {
	QueryAnalysis   *queryanalyzer.QueryAnalysis `json:"queryAnalysis"`
	Suggestions     []string                     `json:"suggestions"`
	EnhancedQuery   string                       `json:"enhancedQuery"`
	RelatedConcepts []string                     `json:"relatedConcepts"`
}
