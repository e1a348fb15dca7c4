package usecase

import (
	"context"

	"gridworks/internal/domain"
)

// CreateTaskInput carries the writable fields of a task. WorkID is a
// required strong reference.
type CreateTaskInput struct {
	Code   int
	Stage  string
	Group  string
	Name   string
	Unit   string
	WorkID string
}

func (s Service) CreateTask(ctx context.Context, in CreateTaskInput) (TaskOutput, error) {
	if err := checkRef(ctx, "work", in.WorkID, s.workExists); err != nil {
		return TaskOutput{}, err
	}
	t, err := s.Stores.Tasks.InsertTask(ctx, domain.Task{
		Code:   in.Code,
		Stage:  in.Stage,
		Group:  in.Group,
		Name:   in.Name,
		Unit:   in.Unit,
		WorkID: in.WorkID,
	})
	if err != nil {
		return TaskOutput{}, err
	}
	return taskOutput(t), nil
}

func (s Service) GetTask(ctx context.Context, id string) (TaskOutput, error) {
	t, err := s.Stores.Tasks.GetTask(ctx, id)
	if err != nil {
		return TaskOutput{}, err
	}
	return taskOutput(t), nil
}

func (s Service) ListTasks(ctx context.Context, q domain.PageQuery) (ListOutput[TaskOutput], error) {
	page, err := s.Stores.Tasks.ListTasks(ctx, s.normalize(q))
	if err != nil {
		return ListOutput[TaskOutput]{}, err
	}
	return mapPage(page, taskOutput), nil
}

func (s Service) UpdateTask(ctx context.Context, id string, p domain.TaskPatch) (TaskOutput, error) {
	if p.WorkID != nil {
		if err := checkRef(ctx, "work", *p.WorkID, s.workExists); err != nil {
			return TaskOutput{}, err
		}
	}
	t, err := s.Stores.Tasks.UpdateTask(ctx, id, p)
	if err != nil {
		return TaskOutput{}, err
	}
	return taskOutput(t), nil
}

func (s Service) DeleteTask(ctx context.Context, id string) error {
	return s.Stores.Tasks.DeleteTask(ctx, id)
}
