package allocation

import (
	"errors"
	"fmt"
	"sync"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

var ErrCycleDetected = errors.New("dependency would create a cycle")

// Project is the scoping boundary for one graph of tasks and one
// allocation run. The mutex serialises edge insertion and allocation:
// two interleaved allocations would book the same roster snapshot twice,
// and two interleaved insertions could each pass the cycle check while
// being jointly cyclic.
type Project struct {
	Name string

	tasks        []*Task
	dependencies []Dependency
	resources    []*Resource

	mu sync.Mutex

	ID     int64
	Status ProjectStatus
}

type ParamsNewProject struct {
	Name string `valid:"required"`

	ID int64 `valid:"required"`
}

func NewProject(params *ParamsNewProject) (*Project, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Allocation",
				Caller:      "NewProject",
				Issue:       errValidation,
			}
	}

	return &Project{
			Name:   params.Name,
			Status: ProjectStatusPlanning,

			ID: params.ID,
		},
		nil
}

func (project *Project) AddTask(task *Task) error {
	if task == nil {
		return goerrors.ErrNilInput{
			InputName: "task",
		}
	}

	project.mu.Lock()
	defer project.mu.Unlock()

	for _, existing := range project.tasks {
		if existing.ID == task.ID {
			return fmt.Errorf(
				"task %d already registered",
				task.ID,
			)
		}
	}

	project.tasks = append(project.tasks, task)

	return nil
}

func (project *Project) AddResource(resource *Resource) error {
	if resource == nil {
		return goerrors.ErrNilInput{
			InputName: "resource",
		}
	}

	project.mu.Lock()
	defer project.mu.Unlock()

	for _, existing := range project.resources {
		if existing.ID == resource.ID {
			return fmt.Errorf(
				"resource %d already registered",
				resource.ID,
			)
		}
	}

	project.resources = append(project.resources, resource)

	return nil
}

// AddDependency is a check-then-commit sequence: the edge joins the
// committed set only after the detector confirms the full edge set stays
// acyclic. The candidate set is built on a copy, so a rejected edge
// leaves the project exactly as it was.
func (project *Project) AddDependency(dependency Dependency) error {
	project.mu.Lock()
	defer project.mu.Unlock()

	candidate := make([]Dependency, 0, len(project.dependencies)+1)
	candidate = append(candidate, project.dependencies...)
	candidate = append(candidate, dependency)

	graph, errGraph := NewGraph(
		&ParamsNewGraph{
			Tasks:        project.tasks,
			Dependencies: candidate,
		},
	)
	if errGraph != nil {
		return errGraph
	}

	if graph.HasCycle() {
		return ErrCycleDetected
	}

	project.dependencies = candidate

	return nil
}

// AllocateAt plans the whole project starting at the given unix time.
// Calls on the same project serialise on the project mutex. The project
// keeps only inputs; the schedule is returned, never retained.
func (project *Project) AllocateAt(timeStart int64) (Assignments, error) {
	project.mu.Lock()
	defer project.mu.Unlock()

	graph, errGraph := NewGraph(
		&ParamsNewGraph{
			Tasks:        project.tasks,
			Dependencies: project.dependencies,
		},
	)
	if errGraph != nil {
		return nil,
			errGraph
	}

	orderedTasks, errOrder := graph.TopologicalOrder()
	if errOrder != nil {
		return nil,
			errOrder
	}

	return Allocate(
		&ParamsAllocate{
			OrderedTasks: orderedTasks,
			Resources:    project.resources,

			TimeStart: timeStart,
		},
	)
}

// DAG returns the visualisation view of the current task graph.
func (project *Project) DAG() (*GraphProjection, error) {
	project.mu.Lock()
	defer project.mu.Unlock()

	graph, errGraph := NewGraph(
		&ParamsNewGraph{
			Tasks:        project.tasks,
			Dependencies: project.dependencies,
		},
	)
	if errGraph != nil {
		return nil,
			errGraph
	}

	return graph.Projection(),
		nil
}
