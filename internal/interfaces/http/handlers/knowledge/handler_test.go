package knowledge

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/application/knowledge/dto"
	"aster/internal/application/knowledge/usecases"
	"aster/internal/interfaces/http/handlers/testutil"
	"aster/internal/shared/errors"
)

type mockCreateArticleUC struct {
	result *usecases.CreateArticleResult
	err    error
	gotCmd *usecases.CreateArticleCommand
}

func (m *mockCreateArticleUC) Execute(ctx context.Context, cmd usecases.CreateArticleCommand) (*usecases.CreateArticleResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockUpdateArticleUC struct {
	result *usecases.UpdateArticleResult
	err    error
	gotCmd *usecases.UpdateArticleCommand
}

func (m *mockUpdateArticleUC) Execute(ctx context.Context, cmd usecases.UpdateArticleCommand) (*usecases.UpdateArticleResult, error) {
	m.gotCmd = &cmd
	return m.result, m.err
}

type mockViewArticleUC struct {
	result   *usecases.ViewArticleResult
	err      error
	gotQuery *usecases.ViewArticleQuery
}

func (m *mockViewArticleUC) Execute(ctx context.Context, q usecases.ViewArticleQuery) (*usecases.ViewArticleResult, error) {
	m.gotQuery = &q
	return m.result, m.err
}

type mockListArticlesUC struct {
	result   *usecases.ListArticlesResult
	err      error
	gotQuery *usecases.ListArticlesQuery
}

func (m *mockListArticlesUC) Execute(ctx context.Context, q usecases.ListArticlesQuery) (*usecases.ListArticlesResult, error) {
	m.gotQuery = &q
	return m.result, m.err
}

type mockDeleteArticleUC struct {
	err    error
	gotCmd *usecases.DeleteArticleCommand
}

func (m *mockDeleteArticleUC) Execute(ctx context.Context, cmd usecases.DeleteArticleCommand) error {
	m.gotCmd = &cmd
	return m.err
}

type testDeps struct {
	createUC *mockCreateArticleUC
	updateUC *mockUpdateArticleUC
	viewUC   *mockViewArticleUC
	listUC   *mockListArticlesUC
	deleteUC *mockDeleteArticleUC
}

func newTestArticleHandler(deps testDeps) *ArticleHandler {
	if deps.createUC == nil {
		deps.createUC = &mockCreateArticleUC{}
	}
	if deps.updateUC == nil {
		deps.updateUC = &mockUpdateArticleUC{}
	}
	if deps.viewUC == nil {
		deps.viewUC = &mockViewArticleUC{}
	}
	if deps.listUC == nil {
		deps.listUC = &mockListArticlesUC{}
	}
	if deps.deleteUC == nil {
		deps.deleteUC = &mockDeleteArticleUC{}
	}

	return NewArticleHandler(
		deps.createUC,
		deps.updateUC,
		deps.viewUC,
		deps.listUC,
		deps.deleteUC,
		testutil.NewMockLogger(),
	)
}

func TestArticleHandler_CreateArticle(t *testing.T) {
	t.Run("AuthorTakenFromContext", func(t *testing.T) {
		createUC := &mockCreateArticleUC{
			result: &usecases.CreateArticleResult{
				ArticleID: 5,
				Title:     "Resetting your VPN profile",
				AuthorID:  3,
				IsPublic:  true,
				CreatedAt: time.Now(),
			},
		}
		handler := newTestArticleHandler(testDeps{createUC: createUC})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/articles", CreateArticleRequest{
			Title:    "Resetting your VPN profile",
			Content:  "Open the client and remove the stale profile.",
			IsPublic: true,
			Tags:     []string{"vpn"},
		})
		testutil.SetStaffContext(c, 3)

		handler.CreateArticle(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, createUC.gotCmd)
		assert.Equal(t, uint(3), createUC.gotCmd.AuthorID)
		assert.True(t, createUC.gotCmd.IsPublic)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		createUC := &mockCreateArticleUC{}
		handler := newTestArticleHandler(testDeps{createUC: createUC})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/articles", map[string]string{"content": "body only"})
		testutil.SetStaffContext(c, 3)

		handler.CreateArticle(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, createUC.gotCmd)
	})
}

func TestArticleHandler_ViewArticle(t *testing.T) {
	t.Run("PassesViewerStaffFlag", func(t *testing.T) {
		viewUC := &mockViewArticleUC{
			result: &usecases.ViewArticleResult{
				Article: &dto.ArticleDTO{ID: 5, Title: "Resetting your VPN profile", ViewCount: 42},
			},
		}
		handler := newTestArticleHandler(testDeps{viewUC: viewUC})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/articles/5", nil)
		testutil.SetStaffContext(c, 3)
		testutil.SetURLParam(c, "id", "5")

		handler.ViewArticle(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, viewUC.gotQuery)
		assert.Equal(t, uint(5), viewUC.gotQuery.ArticleID)
		assert.True(t, viewUC.gotQuery.ViewerIsStaff)
	})

	t.Run("AnonymousViewerIsNotStaff", func(t *testing.T) {
		viewUC := &mockViewArticleUC{
			result: &usecases.ViewArticleResult{
				Article: &dto.ArticleDTO{ID: 5, Title: "Resetting your VPN profile"},
			},
		}
		handler := newTestArticleHandler(testDeps{viewUC: viewUC})

		// No auth context at all; the route uses optional auth.
		c, _ := testutil.NewTestContext(http.MethodGet, "/api/articles/5", nil)
		testutil.SetURLParam(c, "id", "5")

		handler.ViewArticle(c)

		require.NotNil(t, viewUC.gotQuery)
		assert.False(t, viewUC.gotQuery.ViewerIsStaff)
	})

	t.Run("HiddenDraftReportsNotFound", func(t *testing.T) {
		viewUC := &mockViewArticleUC{err: errors.NewNotFoundError("article not found")}
		handler := newTestArticleHandler(testDeps{viewUC: viewUC})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/articles/5", nil)
		testutil.SetAuthContext(c, 9)
		testutil.SetURLParam(c, "id", "5")

		handler.ViewArticle(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_ListArticles(t *testing.T) {
	listUC := &mockListArticlesUC{
		result: &usecases.ListArticlesResult{
			Articles:   []dto.ArticleListItemDTO{{ID: 5, Title: "Resetting your VPN profile"}},
			TotalCount: 21,
			Page:       1,
			PageSize:   20,
		},
	}
	handler := newTestArticleHandler(testDeps{listUC: listUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/articles", nil)
	testutil.SetStaffContext(c, 3)
	testutil.SetQueryParams(c, map[string]string{
		"keyword":   "vpn",
		"is_public": "false",
	})

	handler.ListArticles(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, listUC.gotQuery)
	assert.Equal(t, "vpn", listUC.gotQuery.Keyword)
	assert.Equal(t, "false", listUC.gotQuery.IsPublic)
	assert.True(t, listUC.gotQuery.ViewerIsStaff)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data struct {
		Items      []dto.ArticleListItemDTO `json:"items"`
		Total      int64                    `json:"total"`
		TotalPages int                      `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(21), data.Total)
	assert.Equal(t, 2, data.TotalPages)
	require.Len(t, data.Items, 1)
}

func TestArticleHandler_UpdateArticle(t *testing.T) {
	updateUC := &mockUpdateArticleUC{
		result: &usecases.UpdateArticleResult{ArticleID: 5, Title: "Updated title", AuthorID: 3, UpdatedAt: time.Now()},
	}
	handler := newTestArticleHandler(testDeps{updateUC: updateUC})

	c, w := testutil.NewTestContext(http.MethodPut, "/api/articles/5", UpdateArticleRequest{
		Title:   "Updated title",
		Content: "Updated body.",
	})
	testutil.SetStaffContext(c, 8)
	testutil.SetURLParam(c, "id", "5")

	handler.UpdateArticle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updateUC.gotCmd)
	assert.Equal(t, uint(5), updateUC.gotCmd.ArticleID)
	assert.Equal(t, uint(8), updateUC.gotCmd.UpdatedBy)
}

func TestArticleHandler_DeleteArticle(t *testing.T) {
	deleteUC := &mockDeleteArticleUC{}
	handler := newTestArticleHandler(testDeps{deleteUC: deleteUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/articles/5", nil)
	testutil.SetAdminContext(c, 1)
	testutil.SetURLParam(c, "id", "5")

	handler.DeleteArticle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, deleteUC.gotCmd)
	assert.Equal(t, uint(5), deleteUC.gotCmd.ArticleID)
	assert.Equal(t, uint(1), deleteUC.gotCmd.DeletedBy)
}
