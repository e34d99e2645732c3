package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/domain/knowledge"
)

func TestListArticlesUseCase_Execute_MapsFilters(t *testing.T) {
	var captured knowledge.Filter
	mockRepo := &mockArticleRepository{
		ListFunc: func(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
			captured = filter
			return []*knowledge.Article{}, 0, nil
		},
	}

	categoryID := uint(2)
	useCase := NewListArticlesUseCase(mockRepo, &mockUserDirectory{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListArticlesQuery{
		Keyword:       "printer",
		CategoryID:    &categoryID,
		IsPublic:      "false",
		Page:          2,
		ViewerIsStaff: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "printer", captured.Keyword)
	require.NotNil(t, captured.IsPublic)
	assert.False(t, *captured.IsPublic)
	assert.Equal(t, 20, captured.Limit())
	assert.Equal(t, 20, captured.Offset())
	assert.Equal(t, 2, result.Page)
}

func TestListArticlesUseCase_Execute_InvalidIsPublicTreatedAsAbsent(t *testing.T) {
	var captured knowledge.Filter
	mockRepo := &mockArticleRepository{
		ListFunc: func(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
			captured = filter
			return []*knowledge.Article{}, 0, nil
		},
	}

	useCase := NewListArticlesUseCase(mockRepo, &mockUserDirectory{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListArticlesQuery{
		IsPublic:      "maybe",
		ViewerIsStaff: true,
	})

	require.NoError(t, err)
	assert.Nil(t, captured.IsPublic)
}

func TestListArticlesUseCase_Execute_NonStaffOnlySeePublic(t *testing.T) {
	var captured knowledge.Filter
	mockRepo := &mockArticleRepository{
		ListFunc: func(ctx context.Context, filter knowledge.Filter) ([]*knowledge.Article, int64, error) {
			captured = filter
			return []*knowledge.Article{}, 0, nil
		},
	}

	useCase := NewListArticlesUseCase(mockRepo, &mockUserDirectory{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), ListArticlesQuery{
		IsPublic:      "false",
		ViewerIsStaff: false,
	})

	require.NoError(t, err)
	require.NotNil(t, captured.IsPublic)
	assert.True(t, *captured.IsPublic)
}
