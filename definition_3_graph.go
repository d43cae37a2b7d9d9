package allocation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
)

// Graph holds the structural data of one project for the duration of one
// planning call: task identities and precedence edges, nothing mutable.
type Graph struct {
	tasks      map[int64]*Task
	successors map[int64][]int64

	dependencies []Dependency
}

type ParamsNewGraph struct {
	Tasks        []*Task
	Dependencies []Dependency
}

func NewGraph(params *ParamsNewGraph) (*Graph, error) {
	tasks := make(map[int64]*Task, len(params.Tasks))

	for _, task := range params.Tasks {
		if task == nil {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewGraph",
					Issue: goerrors.ErrNilInput{
						InputName: "Tasks",
					},
				}
		}

		tasks[task.ID] = task
	}

	successors := make(map[int64][]int64, len(tasks))

	for _, dependency := range params.Dependencies {
		if _, exists := tasks[dependency.PredecessorID]; !exists {
			return nil,
				goerrors.ErrInvalidInput{
					Caller:     "NewGraph",
					InputName:  "Dependencies",
					InputValue: dependency.PredecessorID,
					Issue: errors.New(
						"predecessor is not part of the task set",
					),
				}
		}

		if _, exists := tasks[dependency.SuccessorID]; !exists {
			return nil,
				goerrors.ErrInvalidInput{
					Caller:     "NewGraph",
					InputName:  "Dependencies",
					InputValue: dependency.SuccessorID,
					Issue: errors.New(
						"successor is not part of the task set",
					),
				}
		}

		successors[dependency.PredecessorID] = append(
			successors[dependency.PredecessorID],
			dependency.SuccessorID,
		)
	}

	// Deterministic traversal regardless of edge input order.
	for id := range successors {
		sort.Slice(
			successors[id],
			func(i, j int) bool {
				return successors[id][i] < successors[id][j]
			},
		)
	}

	return &Graph{
			tasks:      tasks,
			successors: successors,

			dependencies: params.Dependencies,
		},
		nil
}

func (g *Graph) sortedTaskIDs() []int64 {
	ids := make([]int64, 0, len(g.tasks))

	for id := range g.tasks {
		ids = append(ids, id)
	}

	sort.Slice(
		ids,
		func(i, j int) bool {
			return ids[i] < ids[j]
		},
	)

	return ids
}

const (
	_ColorWhite uint8 = iota
	_ColorGray
	_ColorBlack
)

// HasCycle walks the graph depth first with an explicit frame stack, so
// deep dependency chains cannot exhaust the call stack. A neighbour that
// is still gray closes a cycle; a black neighbour ends the branch. Runs
// in O(V+E) over the full edge set: a fresh edge can close a cycle
// through edges inserted long before it, so checking only the newcomer
// is never enough. Graphs without edges are trivially acyclic.
func (g *Graph) HasCycle() bool {
	colors := make(map[int64]uint8, len(g.tasks))

	type frame struct {
		id   int64
		next int
	}

	for _, start := range g.sortedTaskIDs() {
		if colors[start] != _ColorWhite {
			continue
		}

		colors[start] = _ColorGray
		stack := []frame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			successorsTop := g.successors[top.id]

			if top.next < len(successorsTop) {
				neighbour := successorsTop[top.next]
				top.next++

				switch colors[neighbour] {
				case _ColorGray:
					return true

				case _ColorWhite:
					colors[neighbour] = _ColorGray
					stack = append(stack, frame{id: neighbour})
				}

				continue
			}

			colors[top.id] = _ColorBlack
			stack = stack[:len(stack)-1]
		}
	}

	return false
}

type NodeView struct {
	Name string

	ID       int64
	Status   TaskStatus
	Priority int
}

type EdgeView struct {
	From int64
	To   int64
}

// GraphProjection is a read-only view of the graph for visualisation.
// Wire shaping (JSON and friends) is the caller's business.
type GraphProjection struct {
	Nodes []NodeView
	Edges []EdgeView
}

func (g *Graph) Projection() *GraphProjection {
	nodes := make([]NodeView, 0, len(g.tasks))

	for _, id := range g.sortedTaskIDs() {
		task := g.tasks[id]

		nodes = append(
			nodes,

			NodeView{
				Name: task.Name,

				ID:       task.ID,
				Status:   task.Status,
				Priority: task.Priority,
			},
		)
	}

	edges := make([]EdgeView, 0, len(g.dependencies))

	for _, dependency := range g.dependencies {
		edges = append(
			edges,

			EdgeView{
				From: dependency.PredecessorID,
				To:   dependency.SuccessorID,
			},
		)
	}

	sort.Slice(
		edges,
		func(i, j int) bool {
			if edges[i].From != edges[j].From {
				return edges[i].From < edges[j].From
			}

			return edges[i].To < edges[j].To
		},
	)

	return &GraphProjection{
		Nodes: nodes,
		Edges: edges,
	}
}

func (projection *GraphProjection) String() string {
	if len(projection.Nodes) == 0 {
		return "Graph: (empty)"
	}

	var sb strings.Builder

	sb.WriteString("Graph:\n")

	for _, node := range projection.Nodes {
		sb.WriteString(
			fmt.Sprintf(
				"- %d %q (%s, priority %d)\n",

				node.ID,
				node.Name,
				node.Status,
				node.Priority,
			),
		)
	}

	for _, edge := range projection.Edges {
		sb.WriteString(
			fmt.Sprintf(
				"- %d → %d\n",

				edge.From,
				edge.To,
			),
		)
	}

	return sb.String()
}
