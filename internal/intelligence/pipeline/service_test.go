package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthik444/procheck/internal/common/database"
	"github.com/arthik444/procheck/internal/common/logger"
	"github.com/arthik444/procheck/internal/common/observability"
	"github.com/arthik444/procheck/internal/intelligence/conceptgraph"
	"github.com/arthik444/procheck/internal/intelligence/queryanalyzer"
	"github.com/arthik444/procheck/internal/intelligence/resultannotator"
	"github.com/arthik444/procheck/internal/intelligence/riskassessor"
	"github.com/arthik444/procheck/internal/search"
)

type fakeSearcher struct {
	lastRequest search.Request
	result      *search.Result
	err         error
	calls       int
}

func (f *fakeSearcher) Search(_ context.Context, req search.Request) (*search.Result, error) {
	f.lastRequest = req
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestService(t *testing.T, searcher Searcher, withCache bool) *Service {
	log := logger.NewTestLogger(t)
	graph := conceptgraph.New(log)

	var cache *Cache
	if withCache {
		mr := miniredis.RunT(t)
		client := &database.RedisClient{
			Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		}
		t.Cleanup(func() { client.Close() })
		cache = NewCache(client, time.Minute, log)
	}

	return NewService(graph, searcher, cache, observability.New("procheck-test"), log)
}

func protocolResult() *search.Result {
	return &search.Result{
		Hits: []resultannotator.SearchHit{
			{
				ID:    "p1",
				Score: 2.5,
				Source: resultannotator.ProtocolSource{
					Title:   "Chest Pain Emergency Protocol",
					Content: "emergency chest pain management with aspirin",
				},
			},
		},
		TotalHits: 1,
		MaxScore:  2.5,
		Took:      7,
	}
}

func TestIntelligentSearch_FullPipeline(t *testing.T) {
	searcher := &fakeSearcher{result: protocolResult()}
	service := newTestService(t, searcher, false)

	response, err := service.IntelligentSearch(context.Background(), SearchRequest{
		Query: "chest pain",
		Size:  10,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, response.RequestID)
	assert.Equal(t, "chest pain", response.Query)

	// the search runs on the enhanced query, not the raw one
	assert.Equal(t, "chest pain chest discomfort chest pressure", searcher.lastRequest.Query)
	assert.Equal(t, response.EnhancedQuery, searcher.lastRequest.Query)

	require.Len(t, response.Hits, 1)
	annotations := response.Hits[0].MedicalAnnotations
	assert.Greater(t, annotations.RelevanceScore, 0.5)

	intelligence := response.MedicalIntelligence
	require.NotNil(t, intelligence.QueryAnalysis)
	assert.Equal(t, queryanalyzer.IntentSymptomBased, intelligence.QueryAnalysis.Intent)
	require.NotEmpty(t, intelligence.KnowledgeGraph.DifferentialDiagnosis)
	assert.Equal(t, "heart attack", intelligence.KnowledgeGraph.DifferentialDiagnosis[0].Name)

	assert.False(t, response.Cached)
}

func TestIntelligentSearch_SearchErrorPropagates(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("index unavailable")}
	service := newTestService(t, searcher, false)

	_, err := service.IntelligentSearch(context.Background(), SearchRequest{Query: "sepsis"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "index unavailable")
}

func TestIntelligentSearch_CacheHitSkipsSearch(t *testing.T) {
	searcher := &fakeSearcher{result: protocolResult()}
	service := newTestService(t, searcher, true)
	req := SearchRequest{Query: "chest pain", Size: 10}

	first, err := service.IntelligentSearch(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, searcher.calls)

	second, err := service.IntelligentSearch(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, searcher.calls, "cache hit must not reach the search index")
	assert.Equal(t, first.RequestID, second.RequestID)
}

func TestIntelligentSearch_DifferentRequestsMissCache(t *testing.T) {
	searcher := &fakeSearcher{result: protocolResult()}
	service := newTestService(t, searcher, true)

	_, err := service.IntelligentSearch(context.Background(), SearchRequest{Query: "chest pain"})
	require.NoError(t, err)
	_, err = service.IntelligentSearch(context.Background(), SearchRequest{Query: "stroke"})
	require.NoError(t, err)

	assert.Equal(t, 2, searcher.calls)
}

func TestSuggestions(t *testing.T) {
	service := newTestService(t, &fakeSearcher{}, false)

	response := service.Suggestions(context.Background(), "severe chest pain")

	require.NotNil(t, response.QueryAnalysis)
	assert.Equal(t, queryanalyzer.IntentSymptomBased, response.QueryAnalysis.Intent)
	assert.Len(t, response.Suggestions, 4)
	assert.Equal(t,
		[]string{"differential diagnosis", "diagnostic tests", "treatment protocols"},
		response.RelatedConcepts)
}

func TestAssessRisk(t *testing.T) {
	service := newTestService(t, &fakeSearcher{}, false)

	assessment := service.AssessRisk(context.Background(),
		riskassessor.PatientContext{Allergies: []string{"penicillin"}},
		"give amoxicillin 500mg",
	)

	assert.Equal(t, riskassessor.RiskCritical, assessment.OverallRisk)
}

func TestGraphContext(t *testing.T) {
	service := newTestService(t, &fakeSearcher{}, false)

	graphContext := service.GraphContext(context.Background(), "chest pain and shortness of breath")

	require.NotNil(t, graphContext)
	assert.Len(t, graphContext.Symptoms, 2)
	require.NotEmpty(t, graphContext.DifferentialDiagnosis)
	assert.Equal(t, "heart_attack", graphContext.DifferentialDiagnosis[0].Condition.ID)
}
