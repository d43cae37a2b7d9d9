package allocation

import (
	goerrors "github.com/TudorHulban/go-errors"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

const DefaultTaskPriority = 3

// Task is immutable for the duration of a planning call.
type Task struct {
	Name           string
	Status         TaskStatus
	RequiredSkills []string

	ID                int64
	ProjectID         int64
	EstimatedDuration int64 // minutes
	Priority          int   // higher is more urgent, used as tie-break only
}

type ParamsNewTask struct {
	Name           string
	RequiredSkills []string

	ID                int64
	ProjectID         int64
	EstimatedDuration int64
	Priority          int
}

func (params *ParamsNewTask) IsValid() error {
	if len(params.Name) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrNilInput{
				InputName: "Name",
			},
		}
	}

	if params.ID <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrInvalidInput{
				InputName: "ID",
			},
		}
	}

	if params.EstimatedDuration <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewTask",
			Issue: goerrors.ErrInvalidInput{
				InputName: "EstimatedDuration",
			},
		}
	}

	return nil
}

func NewTask(params *ParamsNewTask) (*Task, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Task{
			Name:           params.Name,
			Status:         TaskStatusPending,
			RequiredSkills: params.RequiredSkills,

			ID:                params.ID,
			ProjectID:         params.ProjectID,
			EstimatedDuration: params.EstimatedDuration,
			Priority: ternary(
				params.Priority == 0,

				DefaultTaskPriority,
				params.Priority,
			),
		},
		nil
}

// Dependency is an ordered precedence pair: the predecessor must be
// placed before the successor. Both endpoints belong to one project.
type Dependency struct {
	PredecessorID int64
	SuccessorID   int64
}
