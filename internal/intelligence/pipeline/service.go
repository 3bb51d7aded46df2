package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arthik444/procheck/internal/common/logger"
	"github.com/arthik444/procheck/internal/common/metrics"
	"github.com/arthik444/procheck/internal/common/observability"
	"github.com/arthik444/procheck/internal/intelligence/conceptgraph"
	"github.com/arthik444/procheck/internal/intelligence/queryanalyzer"
	"github.com/arthik444/procheck/internal/intelligence/resultannotator"
	"github.com/arthik444/procheck/internal/intelligence/riskassessor"
	"github.com/arthik444/procheck/internal/search"
)

// Searcher is the slice of the search adapter the pipeline needs.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Result, error)
}

// Service wires the four intelligence stages together. The stages themselves
// are pure; the only I/O here is the search call and the response cache.
type Service struct {
	analyzer  *queryanalyzer.Analyzer
	graph     *conceptgraph.Graph
	assessor  *riskassessor.Assessor
	annotator *resultannotator.Annotator
	searcher  Searcher
	cache     *Cache
	obs       *observability.Observability
	logger    logger.Logger
}

func NewService(
	graph *conceptgraph.Graph,
	searcher Searcher,
	cache *Cache,
	obs *observability.Observability,
	log logger.Logger,
) *Service {
	return &Service{
		analyzer:  queryanalyzer.NewAnalyzer(log),
		graph:     graph,
		assessor:  riskassessor.NewAssessor(log),
		annotator: resultannotator.NewAnnotator(log),
		searcher:  searcher,
		cache:     cache,
		obs:       obs,
		logger:    log.WithFields(map[string]interface{}{"component": "pipeline"}),
	}
}

// IntelligentSearch runs the full pipeline: analyze, search with the
// enhanced query, build graph context, annotate. Responses are cached by
// request digest when a cache is configured.
func (s *Service) IntelligentSearch(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	start := time.Now()
	requestID := uuid.NewString()
	log := s.logger.WithFields(map[string]interface{}{"requestId": requestID})

	if s.cache != nil {
		if cached := s.cache.Get(ctx, req); cached != nil {
			cached.Cached = true
			log.Debug("served from cache", map[string]interface{}{"query": req.Query})
			return cached, nil
		}
	}

	analyzeStart := time.Now()
	analysis := s.analyzer.Analyze(req.Query)
	metrics.QueriesAnalyzed.WithLabelValues(string(analysis.Intent)).Inc()
	metrics.PipelineDuration.WithLabelValues("analyze").Observe(time.Since(analyzeStart).Seconds())

	searchStart := time.Now()
	searchResult, err := s.searcher.Search(ctx, search.Request{
		Query:   analysis.EnhancedQuery,
		Size:    req.Size,
		Filters: req.Filters,
	})
	metrics.PipelineDuration.WithLabelValues("search").Observe(time.Since(searchStart).Seconds())
	if err != nil {
		s.obs.RecordRequestProcessed(ctx, "intelligent_search", "error")
		return nil, err
	}

	annotateStart := time.Now()
	graphContext := s.graph.ContextFor(entityTexts(analysis))
	annotated := s.annotator.Annotate(searchResult.Hits, analysis, graphContext)
	metrics.PipelineDuration.WithLabelValues("annotate").Observe(time.Since(annotateStart).Seconds())

	response := &SearchResponse{
		RequestID:           requestID,
		Query:               req.Query,
		EnhancedQuery:       analysis.EnhancedQuery,
		TotalHits:           searchResult.TotalHits,
		MaxScore:            searchResult.MaxScore,
		Took:                searchResult.Took,
		Hits:                annotated.Hits,
		MedicalIntelligence: annotated.MedicalIntelligence,
	}

	if s.cache != nil {
		s.cache.Set(ctx, req, response)
	}

	s.obs.RecordRequestProcessed(ctx, "intelligent_search", "success")
	s.obs.RecordRequestDuration(ctx, "intelligent_search", time.Since(start))
	log.Info("intelligent search completed", map[string]interface{}{
		"query":     req.Query,
		"intent":    analysis.Intent,
		"totalHits": searchResult.TotalHits,
	})

	return response, nil
}

// Suggestions analyzes a query without searching: intent, entities,
// enhancement, and static guidance.
func (s *Service) Suggestions(ctx context.Context, query string) *SuggestionsResponse {
	analysis := s.analyzer.Analyze(query)
	metrics.QueriesAnalyzed.WithLabelValues(string(analysis.Intent)).Inc()
	s.obs.RecordRequestProcessed(ctx, "medical_suggestions", "success")

	return &SuggestionsResponse{
		QueryAnalysis:   analysis,
		Suggestions:     analysis.Suggestions,
		EnhancedQuery:   analysis.EnhancedQuery,
		RelatedConcepts: resultannotator.RelatedConceptsForIntent(analysis.Intent),
	}
}

// AssessRisk evaluates one patient context against protocol text.
func (s *Service) AssessRisk(ctx context.Context, patient riskassessor.PatientContext, protocolContent string) *riskassessor.RiskAssessment {
	assessment := s.assessor.Assess(patient, protocolContent)
	metrics.RiskAssessments.WithLabelValues(string(assessment.OverallRisk)).Inc()
	s.obs.RecordRequestProcessed(ctx, "risk_assessment", "success")
	return assessment
}

// PatientRecommendations is the protocol-independent companion to AssessRisk.
func (s *Service) PatientRecommendations(patient riskassessor.PatientContext, query string) *riskassessor.PatientRecommendations {
	return s.assessor.PatientSpecificRecommendations(patient, query)
}

// GraphContext analyzes a query and returns the knowledge graph context for
// its entities.
func (s *Service) GraphContext(ctx context.Context, query string) *conceptgraph.MedicalContext {
	analysis := s.analyzer.Analyze(query)
	s.obs.RecordRequestProcessed(ctx, "knowledge_graph", "success")
	return s.graph.ContextFor(entityTexts(analysis))
}

func entityTexts(analysis *queryanalyzer.QueryAnalysis) []string {
	texts := make([]string, len(analysis.Entities))
	for i, e := range analysis.Entities {
		texts[i] = e.Text
	}
	return texts
}
