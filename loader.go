package allocation

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"
)

// YAML shape of a project definition. Collaborators that persist their
// entities elsewhere can skip this file entirely; it exists so rosters
// and graphs have a file form for hand-written input and fixtures.
type projectDefinition struct {
	Project      string                 `yaml:"project"`
	ID           int64                  `yaml:"id"`
	Tasks        []definitionTask       `yaml:"tasks"`
	Dependencies []definitionDependency `yaml:"dependencies"`
	Resources    []definitionResource   `yaml:"resources"`
}

type definitionTask struct {
	ID                int64    `yaml:"id"`
	Name              string   `yaml:"name"`
	EstimatedDuration int64    `yaml:"estimated_duration"`
	Priority          int      `yaml:"priority"`
	RequiredSkills    []string `yaml:"required_skills"`
}

type definitionDependency struct {
	Predecessor int64 `yaml:"predecessor"`
	Successor   int64 `yaml:"successor"`
}

type definitionResource struct {
	ID          int64    `yaml:"id"`
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Skills      []string `yaml:"skills"`
	CostPerHour float32  `yaml:"cost_per_hour"`
	Available   *bool    `yaml:"available"` // omitted means available
}

var resourceTypesByName = map[string]ResourceType{
	"employee":  ResourceTypeEmployee,
	"equipment": ResourceTypeEquipment,
}

func LoadProject(path string) (*Project, error) {
	content, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil,
			fmt.Errorf("read file: %w", errRead)
	}

	return ParseProject(content)
}

// ParseProject builds a fully registered Project from a YAML definition.
// Dependencies go through the guarded insertion, so a definition whose
// edges close a cycle is rejected as a whole.
func ParseProject(content []byte) (*Project, error) {
	var definition projectDefinition

	if errUnmarshal := yamlv3.Unmarshal(content, &definition); errUnmarshal != nil {
		return nil,
			fmt.Errorf("parse yaml: %w", errUnmarshal)
	}

	project, errNew := NewProject(
		&ParamsNewProject{
			Name: definition.Project,

			ID: definition.ID,
		},
	)
	if errNew != nil {
		return nil,
			errNew
	}

	for _, defTask := range definition.Tasks {
		task, errTask := NewTask(
			&ParamsNewTask{
				Name:           defTask.Name,
				RequiredSkills: defTask.RequiredSkills,

				ID:                defTask.ID,
				ProjectID:         definition.ID,
				EstimatedDuration: defTask.EstimatedDuration,
				Priority:          defTask.Priority,
			},
		)
		if errTask != nil {
			return nil,
				fmt.Errorf("task %d: %w", defTask.ID, errTask)
		}

		if errAdd := project.AddTask(task); errAdd != nil {
			return nil,
				errAdd
		}
	}

	for _, defResource := range definition.Resources {
		resourceType, knownType := resourceTypesByName[defResource.Type]
		if !knownType {
			return nil,
				fmt.Errorf(
					"resource %d: unknown type %q",
					defResource.ID,
					defResource.Type,
				)
		}

		resource, errResource := NewResource(
			&ParamsNewResource{
				Name:   defResource.Name,
				Skills: defResource.Skills,

				CostPerHour: defResource.CostPerHour,

				ID:   defResource.ID,
				Type: resourceType,
			},
		)
		if errResource != nil {
			return nil,
				fmt.Errorf("resource %d: %w", defResource.ID, errResource)
		}

		if defResource.Available != nil {
			resource.Available = *defResource.Available
		}

		if errAdd := project.AddResource(resource); errAdd != nil {
			return nil,
				errAdd
		}
	}

	for _, defDependency := range definition.Dependencies {
		errAdd := project.AddDependency(
			Dependency{
				PredecessorID: defDependency.Predecessor,
				SuccessorID:   defDependency.Successor,
			},
		)
		if errAdd != nil {
			return nil,
				fmt.Errorf(
					"dependency %d → %d: %w",
					defDependency.Predecessor,
					defDependency.Successor,
					errAdd,
				)
		}
	}

	return project,
		nil
}
