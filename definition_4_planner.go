package allocation

import (
	"errors"
	"fmt"
	"sort"
)

var ErrGraphNotAcyclic = errors.New("graph is not acyclic")

// ErrInvariantViolation signals a topological order shorter than the
// task set even though the cycle check passed. By contract unreachable;
// treat as an internal-consistency fault, never as a partial result.
type ErrInvariantViolation struct {
	Placed int
	Total  int
}

func (e ErrInvariantViolation) Error() string {
	return fmt.Sprintf(
		"topological order placed %d of %d tasks despite passing the cycle check",

		e.Placed,
		e.Total,
	)
}

// TopologicalOrder returns all tasks of an acyclic graph such that for
// every edge the predecessor comes strictly before the successor.
//
// Ready tasks are emitted by priority, highest first. Equal priorities
// fall back to task ID ascending so that repeated runs on the same input
// produce the same order.
func (g *Graph) TopologicalOrder() ([]*Task, error) {
	if g.HasCycle() {
		return nil,
			ErrGraphNotAcyclic
	}

	inDegree := make(map[int64]int, len(g.tasks))

	for id := range g.tasks {
		inDegree[id] = 0
	}

	for _, successorsOfTask := range g.successors {
		for _, successor := range successorsOfTask {
			inDegree[successor]++
		}
	}

	ready := make([]int64, 0, len(g.tasks))

	for _, id := range g.sortedTaskIDs() {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	result := make([]*Task, 0, len(g.tasks))

	for len(ready) > 0 {
		sort.Slice(
			ready,
			func(i, j int) bool {
				taskI := g.tasks[ready[i]]
				taskJ := g.tasks[ready[j]]

				if taskI.Priority != taskJ.Priority {
					return taskI.Priority > taskJ.Priority
				}

				return taskI.ID < taskJ.ID
			},
		)

		current := ready[0]
		ready = ready[1:]

		result = append(result, g.tasks[current])

		for _, successor := range g.successors[current] {
			inDegree[successor]--

			if inDegree[successor] == 0 {
				ready = append(ready, successor)
			}
		}
	}

	if len(result) != len(g.tasks) {
		return nil,
			ErrInvariantViolation{
				Placed: len(result),
				Total:  len(g.tasks),
			}
	}

	return result,
		nil
}
