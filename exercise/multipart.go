package exercise

import (
	"fmt"
	"strings"
)

/*
MultipartProblem groups sub-problems under one exercise, parts are named a, b, c...
*/
type MultipartProblem struct {
	Parts []Problem
}

/*
NewMultipart creates a multipart problem, it panics with less than two parts
*/
func NewMultipart(parts ...Problem) MultipartProblem {
	if len(parts) < 2 {
		panic("multipart problem requires at least two parts")
	}
	return MultipartProblem{Parts: parts}
}

func partName(i int) string {
	return string(rune('a' + i))
}

/*
Part returns the sub-problem by its name
*/
func (p MultipartProblem) Part(name string) (Problem, bool) {
	for i, x := range p.Parts {
		if partName(i) == name {
			return x, true
		}
	}
	return nil, false
}

/*
PartNames returns names of the parts in order
*/
func (p MultipartProblem) PartNames() []string {
	r := make([]string, len(p.Parts))
	for i := range p.Parts {
		r[i] = partName(i)
	}
	return r
}

func (p MultipartProblem) Kind() Kind { return Multipart }

/*
Check checks every part without values.
It passes when all parts pass, learner values are checked on the parts themselves
*/
func (p MultipartProblem) Check(...interface{}) Result {
	ex := []string{}
	for i, x := range p.Parts {
		r := x.Check()
		if !r.Passed {
			if f, ok := AsFailure(r.Err); ok && f.Var == "" {
				f.Var = "part " + partName(i)
			}
			return r
		}
		if r.Explanation != "" {
			ex = append(ex, fmt.Sprintf("%s) %s", partName(i), r.Explanation))
		}
	}
	return pass(strings.Join(ex, "\n\n"))
}

func (p MultipartProblem) Hint() string {
	return fmt.Sprintf("This question has %d parts: %s. Ask for the hint of a part.", len(p.Parts), strings.Join(p.PartNames(), ", "))
}

func (p MultipartProblem) Solution() string {
	s := []string{}
	for i, x := range p.Parts {
		if x.Solution() != "" {
			s = append(s, fmt.Sprintf("%s) %s", partName(i), x.Solution()))
		}
	}
	return strings.Join(s, "\n\n")
}
