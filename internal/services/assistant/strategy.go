package assistant

import (
	"context"

	"weather-chat/internal/models"
	"weather-chat/internal/query"
)

// Strategy is one way of understanding a query and phrasing the answer.
// Two implementations exist: the deterministic RuleStrategy and the
// language-model-backed AIStrategy. Extract and Compose never fail outward;
// a strategy degrades internally instead of returning an error.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, q string) models.ParsedQuery
	Compose(ctx context.Context, parsed models.ParsedQuery, forecast *models.ForecastBundle) string
}

// RuleStrategy answers with the rule-based extractor and composer only.
type RuleStrategy struct{}

func (RuleStrategy) Name() string {
	return "rule-based"
}

func (RuleStrategy) Extract(_ context.Context, q string) models.ParsedQuery {
	return query.Extract(q)
}

func (RuleStrategy) Compose(_ context.Context, parsed models.ParsedQuery, forecast *models.ForecastBundle) string {
	return composeRuleResponse(parsed, forecast)
}
