package ast

import (
	"testing"

	"github.com/finchbuild/finch/source"
)

func TestCountErrorNodesZeroOnCleanTree(t *testing.T) {
	file := &File{
		Stmts: []Stmt{
			&CommandCall{Name: "project", Args: []Expr{&StringLiteral{Value: "demo", Quoted: true}}},
		},
	}
	if got := CountErrorNodes(file); got != 0 {
		t.Errorf("CountErrorNodes = %d, want 0", got)
	}
}

func TestCountErrorNodesCountsNested(t *testing.T) {
	loc := source.Location{File: "f", Line: 1, Column: 1}
	file := &File{
		Stmts: []Stmt{
			&IfStatement{
				Condition: &StringLiteral{Value: "WIN32"},
				Then: []Stmt{
					NewErrorNode(loc, "bad", CategoryUnexpectedToken),
				},
			},
			NewErrorNode(loc, "bad2", CategoryInvalidSyntax),
		},
	}
	if got := CountErrorNodes(file); got != 2 {
		t.Errorf("CountErrorNodes = %d, want 2", got)
	}
}

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.Intern("add_library")
	b := in.Intern("add_library")
	if a != b {
		t.Errorf("interned strings differ: %q vs %q", a, b)
	}
	if in.Len() != 1 {
		t.Errorf("Len() = %d, want 1", in.Len())
	}
	in.Intern("add_executable")
	if in.Len() != 2 {
		t.Errorf("Len() = %d, want 2", in.Len())
	}
}

func TestCloneExprIsIndependent(t *testing.T) {
	orig := &ListExpression{Elements: []Expr{&StringLiteral{Value: "a"}, &StringLiteral{Value: "b"}}}
	clone := CloneExpr(orig).(*ListExpression)
	clone.Elements[0].(*StringLiteral).Value = "mutated"
	if orig.Elements[0].(*StringLiteral).Value != "a" {
		t.Errorf("cloning did not isolate original: got %q", orig.Elements[0].(*StringLiteral).Value)
	}
}

func TestErrorNodeIsErrorNode(t *testing.T) {
	e := NewErrorNode(source.Location{File: "f", Line: 1, Column: 1}, "oops", CategoryUnknownCommand)
	if !e.IsErrorNode() {
		t.Error("ErrorNode.IsErrorNode() = false, want true")
	}
	var s Stmt = e
	var x Expr = e
	if !s.IsErrorNode() || !x.IsErrorNode() {
		t.Error("ErrorNode must satisfy both Stmt and Expr")
	}
}
