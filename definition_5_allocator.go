package allocation

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

var ErrNoAvailableResources = errors.New("no available resources")

type MatchQuality uint8

const (
	MatchSkills MatchQuality = iota + 1
	MatchFallback
)

func (quality MatchQuality) String() string {
	return ternary(
		quality == MatchSkills,

		"skills",
		"fallback",
	)
}

type Assignment struct {
	TimeInterval

	TaskID     int64
	ResourceID int64
	Match      MatchQuality
}

type Assignments []*Assignment

type ParamsAllocate struct {
	OrderedTasks []*Task
	Resources    []*Resource

	TimeStart int64
}

func (params *ParamsAllocate) IsValid() error {
	if params.TimeStart <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsAllocate",
			Issue: goerrors.ErrInvalidInput{
				InputName: "TimeStart",
			},
		}
	}

	for _, task := range params.OrderedTasks {
		if task == nil {
			return goerrors.ErrValidation{
				Caller: "IsValid - ParamsAllocate",
				Issue: goerrors.ErrNilInput{
					InputName: "OrderedTasks",
				},
			}
		}
	}

	for _, resource := range params.Resources {
		if resource == nil {
			return goerrors.ErrValidation{
				Caller: "IsValid - ParamsAllocate",
				Issue: goerrors.ErrNilInput{
					InputName: "Resources",
				},
			}
		}
	}

	return nil
}

// Allocate walks the ordered tasks and books each one on a resource,
// advancing a single shared clock. The resulting timeline is serial even
// when assignments name different resources - a known limitation kept
// from the reference behaviour, not a bug.
//
// With no available resource the call fails before producing anything.
func Allocate(params *ParamsAllocate) (Assignments, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	available := make([]*Resource, 0, len(params.Resources))

	for _, resource := range params.Resources {
		if resource.Available {
			available = append(available, resource)
		}
	}

	if len(available) == 0 {
		return nil,
			ErrNoAvailableResources
	}

	clock := params.TimeStart

	result := make(Assignments, 0, len(params.OrderedTasks))

	for _, task := range params.OrderedTasks {
		resource, match := pickResource(available, task)

		scheduledEnd := clock + minutesToSeconds(task.EstimatedDuration)

		result = append(
			result,

			&Assignment{
				TimeInterval: TimeInterval{
					TimeStart: clock,
					TimeEnd:   scheduledEnd,
				},

				TaskID:     task.ID,
				ResourceID: resource.ID,
				Match:      match,
			},
		)

		clock = scheduledEnd
	}

	return result,
		nil
}

// pickResource scans the roster in its given, stable order. The first
// employee whose skill set covers the task wins. With no skill match the
// first available resource is booked regardless of skills or type,
// reported as MatchFallback so callers can tell the two apart.
// Equipment is never skill-matched.
func pickResource(available []*Resource, task *Task) (*Resource, MatchQuality) {
	for _, resource := range available {
		if resource.Type != ResourceTypeEmployee {
			continue
		}

		if resource.HasSkills(task.RequiredSkills) {
			return resource,
				MatchSkills
		}
	}

	return available[0],
		MatchFallback
}

func (assignments Assignments) String() string {
	if len(assignments) == 0 {
		return "Assignments: (empty)"
	}

	var sb strings.Builder

	sb.WriteString("Assignments:\n")

	for _, assignment := range assignments {
		sb.WriteString(
			fmt.Sprintf(
				"- [%d-%d] Task %d → Resource %d (%s)\n",

				assignment.TimeStart,
				assignment.TimeEnd,
				assignment.TaskID,
				assignment.ResourceID,
				assignment.Match,
			),
		)
	}

	return sb.String()
}
