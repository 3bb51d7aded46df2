package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/arthik444/procheck/internal/common/config"
	"github.com/arthik444/procheck/internal/common/errors"
	"github.com/arthik444/procheck/internal/common/logger"
	"github.com/arthik444/procheck/internal/common/metrics"
	"github.com/arthik444/procheck/internal/intelligence/resultannotator"
)

// Service runs protocol searches against Elasticsearch.
type Service struct {
	client *elasticsearch.Client
	config config.SearchConfig
	logger logger.Logger
}

func NewService(client *elasticsearch.Client, cfg config.SearchConfig, log logger.Logger) *Service {
	return &Service{
		client: client,
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "search"}),
	}
}

// Search executes one protocol query. The request size is defaulted and
// capped from configuration before the query is built.
func (s *Service) Search(ctx context.Context, req Request) (*Result, error) {
	if req.Size <= 0 {
		req.Size = s.config.DefaultSize
	}
	if s.config.MaxSize > 0 && req.Size > s.config.MaxSize {
		req.Size = s.config.MaxSize
	}

	body, err := json.Marshal(BuildProtocolQuery(req))
	if err != nil {
		return nil, errors.NewSearchQueryFailedError("protocol_search", err)
	}

	esReq := esapi.SearchRequest{
		Index: []string{s.config.IndexName},
		Body:  bytes.NewReader(body),
	}

	res, err := esReq.Do(ctx, s.client)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSearchTimeoutError("protocol_search")
		}
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, errors.NewIndexNotFoundError(s.config.IndexName)
	}

	var decoded esResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, errors.NewSearchQueryFailedError("protocol_search", err)
	}

	if decoded.Error != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil, errors.NewSearchQueryFailedError("protocol_search",
			fmt.Errorf("%s: %s", decoded.Error.Type, decoded.Error.Reason))
	}

	result := decodeResult(&decoded)

	metrics.SearchRequests.WithLabelValues("success").Inc()
	s.logger.Debug("protocol search completed", map[string]interface{}{
		"query":     req.Query,
		"totalHits": result.TotalHits,
		"took":      result.Took,
	})

	return result, nil
}

func decodeResult(resp *esResponse) *Result {
	result := &Result{
		Hits:      []resultannotator.SearchHit{},
		TotalHits: resp.Hits.Total.Value,
		Took:      resp.Took,
	}
	if resp.Hits.MaxScore != nil {
		result.MaxScore = *resp.Hits.MaxScore
	}

	for _, hit := range resp.Hits.Hits {
		decoded := resultannotator.SearchHit{
			ID: hit.ID,
			Source: resultannotator.ProtocolSource{
				Title:    hit.Source.Title,
				Content:  hit.Source.Content,
				Category: hit.Source.Disease,
				Tags:     hit.Source.Tags,
			},
		}
		if hit.Score != nil {
			decoded.Score = *hit.Score
		}
		// some indices carry the protocol text under "body" instead of
		// "content"
		if decoded.Source.Content == "" {
			decoded.Source.Content = hit.Source.Body
		}
		result.Hits = append(result.Hits, decoded)
	}

	return result
}
