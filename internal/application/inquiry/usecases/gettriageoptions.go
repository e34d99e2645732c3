package usecases

import (
	"context"

	vo "aster/internal/domain/inquiry/valueobjects"
	"aster/internal/domain/tag"
	"aster/internal/domain/user"
	"aster/internal/shared/logger"
)

// GetTriageOptions backs the filter bar and assignment dropdown: the known
// tags, the assignable staff, and the status/priority vocabularies.

type LabeledOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type StaffOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type GetTriageOptionsResult struct {
	Tags       []string        `json:"tags"`
	Staff      []StaffOption   `json:"staff"`
	Statuses   []LabeledOption `json:"statuses"`
	Priorities []LabeledOption `json:"priorities"`
}

type GetTriageOptionsExecutor interface {
	Execute(ctx context.Context) (*GetTriageOptionsResult, error)
}

type GetTriageOptionsUseCase struct {
	tagRepo tag.Repository
	users   user.Directory
	logger  logger.Interface
}

func NewGetTriageOptionsUseCase(
	tagRepo tag.Repository,
	users user.Directory,
	logger logger.Interface,
) *GetTriageOptionsUseCase {
	return &GetTriageOptionsUseCase{
		tagRepo: tagRepo,
		users:   users,
		logger:  logger,
	}
}

func (uc *GetTriageOptionsUseCase) Execute(ctx context.Context) (*GetTriageOptionsResult, error) {
	tags, err := uc.tagRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tags", "error", err)
		return nil, err
	}

	staff, err := uc.users.ListStaff(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list staff users", "error", err)
		return nil, err
	}

	result := &GetTriageOptionsResult{
		Tags:       make([]string, len(tags)),
		Staff:      make([]StaffOption, len(staff)),
		Statuses:   make([]LabeledOption, 0, len(vo.AllStatuses())),
		Priorities: make([]LabeledOption, 0, len(vo.AllPriorities())),
	}
	for i, t := range tags {
		result.Tags[i] = t.Name()
	}
	for i, u := range staff {
		result.Staff[i] = StaffOption{ID: u.ID(), Name: u.DisplayName()}
	}
	for _, s := range vo.AllStatuses() {
		result.Statuses = append(result.Statuses, LabeledOption{Value: string(s), Label: s.Label()})
	}
	for _, p := range vo.AllPriorities() {
		result.Priorities = append(result.Priorities, LabeledOption{Value: string(p), Label: p.Label()})
	}

	return result, nil
}
