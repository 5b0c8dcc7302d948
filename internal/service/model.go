package service

import (
	"context"
	"strconv"

	"github.com/madlen/chat-backend/internal/domain"
)

// ListFreeModels fetches the upstream model catalog and keeps only entries
// whose prompt and completion prices both come out to zero. An absent price
// counts as zero; a price that does not parse excludes the model.
func (s *Service) ListFreeModels(ctx context.Context) ([]domain.ModelInfo, error) {
	models, err := s.upstream.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	free := make([]domain.ModelInfo, 0, len(models))
	for _, m := range models {
		if !isZeroPrice(m.Pricing.Prompt) || !isZeroPrice(m.Pricing.Completion) {
			continue
		}
		free = append(free, domain.ModelInfo{
			ID:            m.ID,
			Name:          m.Name,
			ContextLength: m.ContextLength,
		})
	}
	return free, nil
}

func isZeroPrice(price string) bool {
	if price == "" {
		return true
	}
	value, err := strconv.ParseFloat(price, 64)
	return err == nil && value == 0
}
