package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/domain/tag"
	"aster/internal/domain/user"
)

func TestGetTriageOptionsUseCase_Execute(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		network, err := tag.ReconstructTag(1, "network", time.Now())
		require.NoError(t, err)
		vpn, err := tag.ReconstructTag(2, "vpn", time.Now())
		require.NoError(t, err)

		morgan, err := user.ReconstructUser(3, "morgan@example.com", "Morgan Reyes", true, false, time.Now())
		require.NoError(t, err)

		tagRepo := &mockTagRepository{
			ListAllFunc: func(ctx context.Context) ([]*tag.Tag, error) {
				return []*tag.Tag{network, vpn}, nil
			},
		}
		users := &mockUserDirectory{
			ListStaffFunc: func(ctx context.Context) ([]*user.User, error) {
				return []*user.User{morgan}, nil
			},
		}

		useCase := NewGetTriageOptionsUseCase(tagRepo, users, &mockLogger{})
		result, err := useCase.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"network", "vpn"}, result.Tags)
		require.Len(t, result.Staff, 1)
		assert.Equal(t, uint(3), result.Staff[0].ID)
		assert.Equal(t, "Morgan Reyes", result.Staff[0].Name)

		statuses := make([]string, 0, len(result.Statuses))
		for _, s := range result.Statuses {
			statuses = append(statuses, s.Value)
		}
		assert.Equal(t, []string{"new", "in_progress", "waiting", "resolved", "closed"}, statuses)

		priorities := make([]string, 0, len(result.Priorities))
		for _, p := range result.Priorities {
			priorities = append(priorities, p.Value)
		}
		assert.Equal(t, []string{"low", "medium", "high", "urgent"}, priorities)

		for _, s := range result.Statuses {
			assert.NotEmpty(t, s.Label)
		}
	})

	t.Run("TagListError", func(t *testing.T) {
		tagRepo := &mockTagRepository{
			ListAllFunc: func(ctx context.Context) ([]*tag.Tag, error) {
				return nil, assert.AnError
			},
		}

		useCase := NewGetTriageOptionsUseCase(tagRepo, &mockUserDirectory{}, &mockLogger{})
		_, err := useCase.Execute(context.Background())

		require.Error(t, err)
	})
}
