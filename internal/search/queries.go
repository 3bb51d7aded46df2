package search

// BuildProtocolQuery builds the search body for the protocol index: a
// weighted multi_match over the document text fields plus term filters, with
// highlighting on the long-text fields. An empty query degrades to
// match_all so filter-only searches still work.
func BuildProtocolQuery(req Request) map[string]interface{} {
	mustClauses := []interface{}{}
	filterClauses := []interface{}{}

	if req.Query != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  req.Query,
				"fields": []string{"title^3", "disease^2.5", "section^2", "body", "content", "tags", "organization"},
				"type":   "best_fields",
			},
		})
	} else {
		mustClauses = append(mustClauses, map[string]interface{}{
			"match_all": map[string]interface{}{},
		})
	}

	addTerms := func(field string, values []string) {
		if len(values) > 0 {
			filterClauses = append(filterClauses, map[string]interface{}{
				"terms": map[string]interface{}{field: values},
			})
		}
	}
	addTerms("region", req.Filters.Region)
	addTerms("year", req.Filters.Year)
	addTerms("organization", req.Filters.Organization)
	addTerms("tags", req.Filters.Tags)
	addTerms("disease", req.Filters.Disease)

	return map[string]interface{}{
		"size": req.Size,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   mustClauses,
				"filter": filterClauses,
			},
		},
		"highlight": map[string]interface{}{
			"fields": map[string]interface{}{
				"body":    map[string]interface{}{"fragment_size": 150, "number_of_fragments": 3},
				"content": map[string]interface{}{"fragment_size": 150, "number_of_fragments": 3},
			},
		},
	}
}
