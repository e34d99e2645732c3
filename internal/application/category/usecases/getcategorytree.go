package usecases

import (
	"context"
	"sort"

	"aster/internal/domain/category"
	"aster/internal/shared/logger"
)

type CategoryTreeNode struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	ParentID    *uint              `json:"parent_id"`
	Children    []CategoryTreeNode `json:"children"`
}

type GetCategoryTreeResult struct {
	Roots []CategoryTreeNode
}

type GetCategoryTreeExecutor interface {
	Execute(ctx context.Context) (*GetCategoryTreeResult, error)
}

type GetCategoryTreeUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewGetCategoryTreeUseCase(
	categoryRepo category.Repository,
	logger logger.Interface,
) *GetCategoryTreeUseCase {
	return &GetCategoryTreeUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute loads every category in one query and assembles the forest in
// memory. Siblings come out name-ordered at every level.
func (uc *GetCategoryTreeUseCase) Execute(ctx context.Context) (*GetCategoryTreeResult, error) {
	categories, err := uc.categoryRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	byParent := make(map[uint][]*category.Category)
	var roots []*category.Category
	for _, cat := range categories {
		if cat.ParentID() == nil {
			roots = append(roots, cat)
		} else {
			byParent[*cat.ParentID()] = append(byParent[*cat.ParentID()], cat)
		}
	}

	return &GetCategoryTreeResult{Roots: buildNodes(roots, byParent)}, nil
}

func buildNodes(categories []*category.Category, byParent map[uint][]*category.Category) []CategoryTreeNode {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name() < categories[j].Name()
	})

	nodes := make([]CategoryTreeNode, len(categories))
	for i, cat := range categories {
		nodes[i] = CategoryTreeNode{
			ID:          cat.ID(),
			Name:        cat.Name(),
			Description: cat.Description(),
			ParentID:    cat.ParentID(),
			Children:    buildNodes(byParent[cat.ID()], byParent),
		}
	}
	return nodes
}
