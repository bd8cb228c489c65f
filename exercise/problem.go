/*
Package exercise implements course problems checked against learner values
and the binder naming them as notebook variables
*/
package exercise

import (
	"fmt"
	"go-ml.dev/pkg/learntools/tables"
	"golang.org/x/xerrors"
	"reflect"
	"strings"
)

/*
Kind is a problem variant
*/
type Kind int

const (
	Coding Kind = iota
	EqualityCheck
	Thought
	Multipart
)

func (k Kind) String() string {
	switch k {
	case Coding:
		return "coding"
	case EqualityCheck:
		return "equality"
	case Thought:
		return "thought"
	case Multipart:
		return "multipart"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
Problem is an exercise the learner checks
*/
type Problem interface {
	// Check evaluates learner values, values are bound to the problem variables by position
	Check(values ...interface{}) Result
	Hint() string
	Solution() string
	Kind() Kind
}

/*
Result is an outcome of a check
*/
type Result struct {
	Passed      bool
	Explanation string // shown when passed, the solution text of thought experiments
	Err         error  // *Failure when not passed
}

func pass(explanation string) Result {
	return Result{Passed: true, Explanation: explanation}
}

func fail(f *Failure) Result {
	return Result{Err: f}
}

/*
Failure is a failed check with expected and actual values and a remediation hint
*/
type Failure struct {
	Var      string
	Expected interface{}
	Actual   interface{}
	Message  string
	Hint     string
}

func (f *Failure) Error() string {
	if f.Var != "" {
		return fmt.Sprintf("Incorrect value for `%s`: %s", f.Var, f.Message)
	}
	return f.Message
}

/*
AsFailure extracts failure from the error chain
*/
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if xerrors.As(err, &f) {
		return f, true
	}
	return nil, false
}

/*
Text keeps hint and solution display texts
*/
type Text struct {
	HintText     string
	SolutionText string
}

func (t Text) Hint() string     { return t.HintText }
func (t Text) Solution() string { return t.SolutionText }

/*
CS formats a code solution: removes common indentation and wraps into a go code block
*/
func CS(code string) string {
	lines := strings.Split(strings.Trim(code, "\n"), "\n")
	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, l := range lines {
		if len(l) >= indent && indent > 0 {
			lines[i] = l[indent:]
		} else if strings.TrimSpace(l) == "" {
			lines[i] = ""
		}
	}
	return "```go\n" + strings.Join(lines, "\n") + "\n```"
}

func arity(vars []string, values []interface{}) *Failure {
	if len(values) != len(vars) {
		return &Failure{
			Expected: len(vars),
			Actual:   len(values),
			Message:  fmt.Sprintf("expected %d values for %v, but got %d", len(vars), vars, len(values)),
		}
	}
	for i, v := range values {
		if v == nil {
			return &Failure{Var: vars[i], Message: "the variable is not set, you need to update the code that creates it"}
		}
	}
	return nil
}

/*
CodingProblem checks learner values with a custom checker.
A problem without checker is free and always passes
*/
type CodingProblem struct {
	Text
	Vars    []string
	Checker func(values ...interface{}) error
}

func (p CodingProblem) Kind() Kind { return Coding }

func (p CodingProblem) Check(values ...interface{}) Result {
	if p.Checker == nil {
		return pass("")
	}
	if f := arity(p.Vars, values); f != nil {
		f.Hint = p.HintText
		return fail(f)
	}
	if err := p.Checker(values...); err != nil {
		f, ok := AsFailure(err)
		if !ok {
			f = &Failure{Message: err.Error()}
		}
		if f.Hint == "" {
			f.Hint = p.HintText
		}
		return fail(f)
	}
	return pass("")
}

/*
EqualityCheckProblem compares learner values with expected ones.
Frames are compared cell by cell, floats within Tolerance, other values are deeply equal
*/
type EqualityCheckProblem struct {
	Text
	Vars      []string
	Expected  []interface{}
	Tolerance float64
}

func (p EqualityCheckProblem) Kind() Kind { return EqualityCheck }

func (p EqualityCheckProblem) Check(values ...interface{}) Result {
	if f := arity(p.Vars, values); f != nil {
		f.Hint = p.HintText
		return fail(f)
	}
	for i, v := range values {
		if err := equal(p.Expected[i], v, p.Tolerance); err != nil {
			return fail(&Failure{Var: p.Vars[i], Expected: p.Expected[i], Actual: v, Message: err.Error(), Hint: p.HintText})
		}
	}
	return pass("")
}

/*
Loosen returns the problem comparing float cells within tol at least.
Problems other than equality checks are returned as is
*/
func Loosen(p Problem, tol float64) Problem {
	if q, ok := p.(EqualityCheckProblem); ok && q.Tolerance < tol {
		q.Tolerance = tol
		return q
	}
	return p
}

func equal(expected, actual interface{}, tol float64) error {
	if e, ok := expected.(tables.Frame); ok {
		a, ok := actual.(tables.Frame)
		if !ok {
			return xerrors.Errorf("expected a frame, but got %T", actual)
		}
		return tables.Equal(e, a, tol)
	}
	if !reflect.DeepEqual(expected, actual) {
		return xerrors.Errorf("expected `%v`, but got `%v`", expected, actual)
	}
	return nil
}

/*
ThoughtExperiment has no checkable answer, it always passes with the solution as explanation
*/
type ThoughtExperiment struct {
	Text
}

func (p ThoughtExperiment) Kind() Kind { return Thought }

func (p ThoughtExperiment) Check(...interface{}) Result {
	return pass(p.SolutionText)
}
