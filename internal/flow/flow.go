// Package flow models a multi-step conversation as an explicit ordered
// graph of named steps, so back-navigation is a table lookup instead of
// positional bookkeeping inside every handler.
package flow

type Step struct {
	// Name is the state name stored per (user, chat) while the step is
	// active. Names are namespaced by flow, e.g. "product.price".
	Name string
	// Reprompt is shown when the user steps back into this step.
	Reprompt string
}

type Graph struct {
	steps []Step
	index map[string]int
}

func New(steps ...Step) *Graph {
	index := make(map[string]int, len(steps))
	for i, step := range steps {
		index[step.Name] = i
	}
	return &Graph{steps: steps, index: index}
}

func (g *Graph) First() Step {
	return g.steps[0]
}

// Prev returns the step before name. ok is false at the first step and for
// names outside the graph.
func (g *Graph) Prev(name string) (Step, bool) {
	i, ok := g.index[name]
	if !ok || i == 0 {
		return Step{}, false
	}
	return g.steps[i-1], true
}

// Next returns the step after name. ok is false at the last step and for
// names outside the graph.
func (g *Graph) Next(name string) (Step, bool) {
	i, ok := g.index[name]
	if !ok || i == len(g.steps)-1 {
		return Step{}, false
	}
	return g.steps[i+1], true
}
