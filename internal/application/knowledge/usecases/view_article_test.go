package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/domain/knowledge"
	"aster/internal/domain/user"
	"aster/internal/shared/errors"
	"aster/internal/shared/markdown"
)

func TestViewArticleUseCase_Execute_CountsView(t *testing.T) {
	incremented := false
	mockRepo := &mockArticleRepository{
		IncrementViewAndFindFunc: func(ctx context.Context, id uint) (*knowledge.Article, error) {
			incremented = true
			return makeArticle(t, id, "Fixing stuck print jobs", 3, true, 42), nil
		},
	}
	mockUsers := &mockUserDirectory{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return user.ReconstructUser(id, "kim@example.com", "Kim Soto", true, false, time.Now())
		},
	}

	useCase := NewViewArticleUseCase(mockRepo, mockUsers, markdown.NewService(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), ViewArticleQuery{ArticleID: 7})

	require.NoError(t, err)
	assert.True(t, incremented)
	assert.Equal(t, uint(42), result.Article.ViewCount)
	assert.Equal(t, "Kim Soto", result.Article.AuthorName)
	assert.NotEmpty(t, result.Article.RenderedHTML)
}

func TestViewArticleUseCase_Execute_DraftHiddenFromNonStaff(t *testing.T) {
	mockRepo := &mockArticleRepository{
		IncrementViewAndFindFunc: func(ctx context.Context, id uint) (*knowledge.Article, error) {
			return makeArticle(t, id, "Internal runbook", 3, false, 1), nil
		},
	}

	useCase := NewViewArticleUseCase(mockRepo, &mockUserDirectory{}, markdown.NewService(), &mockLogger{})
	_, err := useCase.Execute(context.Background(), ViewArticleQuery{ArticleID: 7, ViewerIsStaff: false})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestViewArticleUseCase_Execute_DraftVisibleToStaff(t *testing.T) {
	mockRepo := &mockArticleRepository{
		IncrementViewAndFindFunc: func(ctx context.Context, id uint) (*knowledge.Article, error) {
			return makeArticle(t, id, "Internal runbook", 3, false, 1), nil
		},
	}

	useCase := NewViewArticleUseCase(mockRepo, &mockUserDirectory{}, markdown.NewService(), &mockLogger{})
	result, err := useCase.Execute(context.Background(), ViewArticleQuery{ArticleID: 7, ViewerIsStaff: true})

	require.NoError(t, err)
	assert.Equal(t, "Internal runbook", result.Article.Title)
}

func TestViewArticleUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockArticleRepository{
		IncrementViewAndFindFunc: func(ctx context.Context, id uint) (*knowledge.Article, error) {
			return nil, errors.NewNotFoundError("article not found")
		},
	}

	useCase := NewViewArticleUseCase(mockRepo, &mockUserDirectory{}, markdown.NewService(), &mockLogger{})
	_, err := useCase.Execute(context.Background(), ViewArticleQuery{ArticleID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
