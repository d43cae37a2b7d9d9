package allocation

import (
	"slices"

	goerrors "github.com/TudorHulban/go-errors"
)

type ResourceType uint8

const (
	ResourceTypeEmployee ResourceType = iota + 1
	ResourceTypeEquipment
)

type Resource struct {
	Name   string
	Skills []string

	CostPerHour float32 // informational only, never an allocation criterion

	ID        int64
	Type      ResourceType
	Available bool
}

type ParamsNewResource struct {
	Name   string
	Skills []string

	CostPerHour float32

	ID   int64
	Type ResourceType
}

func (params *ParamsNewResource) IsValid() error {
	if len(params.Name) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrNilInput{
				InputName: "Name",
			},
		}
	}

	if params.ID <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrInvalidInput{
				InputName: "ID",
			},
		}
	}

	if params.Type != ResourceTypeEmployee && params.Type != ResourceTypeEquipment {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrInvalidInput{
				InputName: "Type",
			},
		}
	}

	if params.CostPerHour < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewResource",
			Issue: goerrors.ErrNegativeInput{
				InputName: "CostPerHour",
			},
		}
	}

	return nil
}

func NewResource(params *ParamsNewResource) (*Resource, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Resource{
			Name:   params.Name,
			Skills: params.Skills,

			CostPerHour: params.CostPerHour,

			ID:        params.ID,
			Type:      params.Type,
			Available: true,
		},
		nil
}

// HasSkills reports whether the resource covers every required skill.
// An empty requirement matches any resource.
func (res *Resource) HasSkills(required []string) bool {
	for _, skill := range required {
		if !slices.Contains(res.Skills, skill) {
			return false
		}
	}

	return true
}
