package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/domain/category"
	"aster/internal/domain/inquiry"
	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/domain/knowledge"
	"aster/internal/shared/errors"
)

func createTestCategory(t *testing.T, repo category.Repository, name string, parentID *uint) *category.Category {
	t.Helper()
	cat, err := category.NewCategory(name, "", parentID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), cat))
	return cat
}

func TestCategoryRepository_ListChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	hardware := createTestCategory(t, repo, "Hardware", nil)
	createTestCategory(t, repo, "Software", nil)
	hardwareID := hardware.ID()
	createTestCategory(t, repo, "Printers", &hardwareID)
	createTestCategory(t, repo, "Laptops", &hardwareID)

	t.Run("roots in name order", func(t *testing.T) {
		roots, err := repo.ListChildren(ctx, nil)
		require.NoError(t, err)
		require.Len(t, roots, 2)
		assert.Equal(t, "Hardware", roots[0].Name())
		assert.Equal(t, "Software", roots[1].Name())
	})

	t.Run("children in name order", func(t *testing.T) {
		children, err := repo.ListChildren(ctx, &hardwareID)
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, "Laptops", children[0].Name())
		assert.Equal(t, "Printers", children[1].Name())
	})
}

func TestCategoryRepository_SubtreeIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	root := createTestCategory(t, repo, "Hardware", nil)
	rootID := root.ID()
	child := createTestCategory(t, repo, "Printers", &rootID)
	childID := child.ID()
	grandchild := createTestCategory(t, repo, "Laser", &childID)
	createTestCategory(t, repo, "Software", nil)

	t.Run("includes all descendants", func(t *testing.T) {
		ids, err := repo.SubtreeIDs(ctx, rootID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{rootID, childID, grandchild.ID()}, ids)
	})

	t.Run("leaf returns itself", func(t *testing.T) {
		ids, err := repo.SubtreeIDs(ctx, grandchild.ID())
		require.NoError(t, err)
		assert.Equal(t, []uint{grandchild.ID()}, ids)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := repo.SubtreeIDs(ctx, 9999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCategoryRepository_Delete_CascadesAndClearsReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	inquiryRepo := NewInquiryRepository(db, testLogger())
	articleRepo := NewArticleRepository(db, testLogger())
	ctx := context.Background()

	root := createTestCategory(t, repo, "Hardware", nil)
	rootID := root.ID()
	child := createTestCategory(t, repo, "Printers", &rootID)
	childID := child.ID()
	other := createTestCategory(t, repo, "Software", nil)
	otherID := other.ID()

	inq, err := inquiry.NewInquiry(
		"Printer jams constantly", "Paper jams on every job.",
		"Dana Webb", "dana@example.com", "",
		vo.PriorityHigh, &childID, nil,
	)
	require.NoError(t, err)
	require.NoError(t, inquiryRepo.Save(ctx, inq))

	keptInq, err := inquiry.NewInquiry(
		"License renewal", "Office license expired.",
		"Ray Otis", "ray@example.com", "",
		vo.PriorityLow, &otherID, nil,
	)
	require.NoError(t, err)
	require.NoError(t, inquiryRepo.Save(ctx, keptInq))

	article, err := knowledge.NewArticle(
		"Clearing paper jams", "Open tray two and pull gently.",
		&rootID, 1, true, nil, nil,
	)
	require.NoError(t, err)
	require.NoError(t, articleRepo.Save(ctx, article))

	require.NoError(t, repo.Delete(ctx, rootID))

	t.Run("subtree is gone", func(t *testing.T) {
		_, err := repo.FindByID(ctx, rootID)
		assert.True(t, errors.IsNotFoundError(err))
		_, err = repo.FindByID(ctx, childID)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("referencing rows survive with cleared category", func(t *testing.T) {
		found, err := inquiryRepo.FindByID(ctx, inq.ID())
		require.NoError(t, err)
		assert.Nil(t, found.CategoryID())

		foundArticle, err := articleRepo.FindByID(ctx, article.ID())
		require.NoError(t, err)
		assert.Nil(t, foundArticle.CategoryID())
	})

	t.Run("unrelated references untouched", func(t *testing.T) {
		found, err := inquiryRepo.FindByID(ctx, keptInq.ID())
		require.NoError(t, err)
		require.NotNil(t, found.CategoryID())
		assert.Equal(t, otherID, *found.CategoryID())
	})

	t.Run("double delete reports not found", func(t *testing.T) {
		err := repo.Delete(ctx, rootID)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCategoryRepository_TopByReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	inquiryRepo := NewInquiryRepository(db, testLogger())
	articleRepo := NewArticleRepository(db, testLogger())
	ctx := context.Background()

	hardware := createTestCategory(t, repo, "Hardware", nil)
	software := createTestCategory(t, repo, "Software", nil)
	hardwareID := hardware.ID()
	softwareID := software.ID()

	for i := 0; i < 2; i++ {
		inq, err := inquiry.NewInquiry(
			"Broken keyboard", "Keys stick.",
			"Dana Webb", "dana@example.com", "",
			vo.PriorityMedium, &hardwareID, nil,
		)
		require.NoError(t, err)
		require.NoError(t, inquiryRepo.Save(ctx, inq))
	}

	article, err := knowledge.NewArticle(
		"Resetting passwords", "Use the self-service portal.",
		&softwareID, 1, true, nil, nil,
	)
	require.NoError(t, err)
	require.NoError(t, articleRepo.Save(ctx, article))

	t.Run("ordered by total references", func(t *testing.T) {
		counts, err := repo.TopByReferences(ctx, 5)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, hardwareID, counts[0].CategoryID)
		assert.Equal(t, int64(2), counts[0].Inquiries)
		assert.Equal(t, softwareID, counts[1].CategoryID)
		assert.Equal(t, int64(1), counts[1].Articles)
	})

	t.Run("limit applies", func(t *testing.T) {
		counts, err := repo.TopByReferences(ctx, 1)
		require.NoError(t, err)
		require.Len(t, counts, 1)
		assert.Equal(t, hardwareID, counts[0].CategoryID)
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()

	cat := createTestCategory(t, repo, "Hardware", nil)

	require.NoError(t, cat.Rename("Devices"))
	require.NoError(t, repo.Update(ctx, cat))

	found, err := repo.FindByID(ctx, cat.ID())
	require.NoError(t, err)
	assert.Equal(t, "Devices", found.Name())

	t.Run("reparent to nil persists", func(t *testing.T) {
		rootID := cat.ID()
		child := createTestCategory(t, repo, "Printers", &rootID)
		require.NoError(t, child.SetParent(nil))
		require.NoError(t, repo.Update(ctx, child))

		found, err := repo.FindByID(ctx, child.ID())
		require.NoError(t, err)
		assert.Nil(t, found.ParentID())
	})
}
