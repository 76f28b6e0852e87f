package flow

import "testing"

func testGraph() *Graph {
	return New(
		Step{Name: "product.name", Reprompt: "name again"},
		Step{Name: "product.description", Reprompt: "description again"},
		Step{Name: "product.price", Reprompt: "price again"},
	)
}

func TestFirst(t *testing.T) {
	g := testGraph()
	if got := g.First().Name; got != "product.name" {
		t.Fatalf("First = %q", got)
	}
}

func TestPrev(t *testing.T) {
	g := testGraph()

	step, ok := g.Prev("product.price")
	if !ok || step.Name != "product.description" {
		t.Fatalf("Prev(price) = %v, %v", step, ok)
	}
	if step.Reprompt != "description again" {
		t.Fatalf("unexpected reprompt %q", step.Reprompt)
	}

	if _, ok := g.Prev("product.name"); ok {
		t.Fatalf("expected no step before the first")
	}
	if _, ok := g.Prev("outside"); ok {
		t.Fatalf("expected no step for unknown name")
	}
}

func TestNext(t *testing.T) {
	g := testGraph()

	step, ok := g.Next("product.name")
	if !ok || step.Name != "product.description" {
		t.Fatalf("Next(name) = %v, %v", step, ok)
	}
	if _, ok := g.Next("product.price"); ok {
		t.Fatalf("expected no step after the last")
	}
}
