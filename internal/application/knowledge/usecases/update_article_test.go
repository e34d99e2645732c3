package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/domain/knowledge"
)

func TestUpdateArticleUseCase_Execute_KeepsAuthor(t *testing.T) {
	var updated *knowledge.Article
	mockRepo := &mockArticleRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*knowledge.Article, error) {
			return makeArticle(t, id, "Fixing stuck print jobs", 3, true, 42), nil
		},
		UpdateFunc: func(ctx context.Context, article *knowledge.Article) error {
			updated = article
			return nil
		},
	}

	useCase := NewUpdateArticleUseCase(mockRepo, &mockCategoryRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateArticleCommand{
		ArticleID: 7,
		Title:     "Fixing stuck print jobs on Windows",
		Content:   "Restart the print spooler service, then clear the queue.",
		IsPublic:  true,
		Tags:      []string{"Printing"},
		UpdatedBy: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.AuthorID, "editing never transfers authorship")
	require.NotNil(t, updated)
	assert.Equal(t, uint(3), updated.AuthorID())
	assert.Equal(t, "Fixing stuck print jobs on Windows", updated.Title())
	assert.Equal(t, []string{"printing"}, updated.Tags())
}

func TestUpdateArticleUseCase_Execute_PreservesViewCount(t *testing.T) {
	var updated *knowledge.Article
	mockRepo := &mockArticleRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*knowledge.Article, error) {
			return makeArticle(t, id, "Fixing stuck print jobs", 3, true, 42), nil
		},
		UpdateFunc: func(ctx context.Context, article *knowledge.Article) error {
			updated = article
			return nil
		},
	}

	useCase := NewUpdateArticleUseCase(mockRepo, &mockCategoryRepository{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateArticleCommand{
		ArticleID: 7,
		Title:     "Fixing stuck print jobs",
		Content:   "Updated content.",
		IsPublic:  true,
		UpdatedBy: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), updated.ViewCount())
}
