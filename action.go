package alphablotto

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidBudget is returned when asked to allocate a negative budget.
var ErrInvalidBudget = errors.New("invalid resource budget")

// Node is one of the contested positions on the board.
type Node uint8

const (
	Left Node = iota
	Center
	Right
)

var nodeStr = [...]string{
	"Left",
	"Center",
	"Right",
}

// String implements Stringer.
func (n Node) String() string {
	return nodeStr[n]
}

// The number of contested Nodes.
const NumNodes = len(nodeStr)

// Weight is the number of points a Node is worth.
// The center node is worth twice the outer nodes.
func (n Node) Weight() int {
	if n == Center {
		return 2
	}

	return 1
}

// Action is a pure strategy: the number of resources a player commits
// to each Node.
type Action [NumNodes]int

// Sum returns the total resources committed by the Action.
func (a Action) Sum() int {
	total := 0
	for _, x := range a {
		total += x
	}
	return total
}

// String implements Stringer.
func (a Action) String() string {
	return fmt.Sprintf("(%d,%d,%d)", a[Left], a[Center], a[Right])
}

// ListActions enumerates every way to split budget across the Nodes.
// Actions are returned in lexicographic order.
func ListActions(budget int) ([]Action, error) {
	if budget < 0 {
		return nil, errors.Wrapf(ErrInvalidBudget, "budget %d", budget)
	}

	result := make([]Action, 0, CountActions(budget))
	for left := 0; left <= budget; left++ {
		for center := 0; center <= budget-left; center++ {
			result = append(result, Action{left, center, budget - left - center})
		}
	}

	return result, nil
}

// CountActions returns the number of distinct Actions for the given budget,
// i.e. the number of compositions of budget into NumNodes non-negative parts.
func CountActions(budget int) int {
	if budget < 0 {
		return 0
	}

	return (budget + 2) * (budget + 1) / 2
}
