package exercise

import (
	"errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
	"testing"
)

func sizeProblem() CodingProblem {
	return CodingProblem{
		Text: Text{HintText: "use 2", SolutionText: CS("\n    x = 2\n")},
		Vars: []string{"x"},
		Checker: func(values ...interface{}) error {
			if values[0].(int) != 2 {
				return &Failure{Var: "x", Expected: 2, Actual: values[0], Message: "x should be 2"}
			}
			return nil
		},
	}
}

func Test_Coding(t *testing.T) {
	p := sizeProblem()
	assert.Equal(t, p.Kind(), Coding)
	assert.Assert(t, p.Check(2).Passed)

	r := p.Check(3)
	assert.Assert(t, !r.Passed)
	f, ok := AsFailure(r.Err)
	assert.Assert(t, ok)
	assert.Equal(t, f.Expected, 2)
	assert.Equal(t, f.Actual, 3)
	assert.Equal(t, f.Hint, "use 2")
	assert.Equal(t, r.Err.Error(), "Incorrect value for `x`: x should be 2")

	r = p.Check()
	assert.ErrorContains(t, r.Err, "expected 1 values")
	r = p.Check(nil)
	assert.ErrorContains(t, r.Err, "not set")

	p.Checker = func(...interface{}) error { return errors.New("plain") }
	f, ok = AsFailure(p.Check(1).Err)
	assert.Assert(t, ok)
	assert.Equal(t, f.Message, "plain")

	assert.Assert(t, CodingProblem{}.Check().Passed)
}

func Test_CS(t *testing.T) {
	s := CS(`
    a = 1
    if a:
        b = 2
    `)
	assert.Equal(t, s, "```go\na = 1\nif a:\n    b = 2\n\n```")
}

func Test_EqualityCheck(t *testing.T) {
	frame := func(v ...float64) dataframe.DataFrame {
		return dataframe.New(series.New(v, series.Float, "ip_target"))
	}
	p := EqualityCheckProblem{
		Text:      Text{HintText: "fit on train"},
		Vars:      []string{"train_encoded", "n"},
		Expected:  []interface{}{frame(0.5, 0.25), 7},
		Tolerance: 1e-9,
	}
	assert.Equal(t, p.Kind(), EqualityCheck)
	assert.Assert(t, p.Check(frame(0.5, 0.25+1e-13), 7).Passed)

	r := p.Check(frame(0.5, 0.3), 7)
	f, ok := AsFailure(r.Err)
	assert.Assert(t, ok)
	assert.Equal(t, f.Var, "train_encoded")
	assert.Equal(t, f.Hint, "fit on train")
	assert.Check(t, cmp.Contains(r.Err.Error(), "row 1"))

	r = p.Check(frame(0.5, 0.25), 8)
	assert.ErrorContains(t, r.Err, "`n`")
	r = p.Check("frame", 7)
	assert.ErrorContains(t, r.Err, "expected a frame")
}

func Test_Loosen(t *testing.T) {
	frame := func(v ...float64) dataframe.DataFrame {
		return dataframe.New(series.New(v, series.Float, "app_cb"))
	}
	p := EqualityCheckProblem{
		Vars:     []string{"train_encoded"},
		Expected: []interface{}{frame(0.1907371794871795)},
	}
	csv := frame(0.190737)
	assert.Assert(t, !p.Check(csv).Passed)
	assert.Assert(t, Loosen(p, 1e-6).Check(csv).Passed)
	assert.Equal(t, Loosen(p, 1e-6).(EqualityCheckProblem).Tolerance, 1e-6)
	p.Tolerance = 1e-3
	assert.Equal(t, Loosen(p, 1e-6).(EqualityCheckProblem).Tolerance, 1e-3)
	th := ThoughtExperiment{Text{SolutionText: "because"}}
	assert.Equal(t, Loosen(th, 1e-6), Problem(th))
}

func Test_Thought(t *testing.T) {
	p := ThoughtExperiment{Text{HintText: "think", SolutionText: "because"}}
	assert.Equal(t, p.Kind(), Thought)
	r := p.Check()
	assert.Assert(t, r.Passed)
	assert.Equal(t, r.Explanation, "because")
	assert.Assert(t, p.Check("anything", 1).Passed)
}

func Test_Multipart(t *testing.T) {
	m := NewMultipart(CodingProblem{}, ThoughtExperiment{Text{SolutionText: "pooled scores"}})
	assert.Equal(t, m.Kind(), Multipart)
	assert.DeepEqual(t, m.PartNames(), []string{"a", "b"})
	r := m.Check()
	assert.Assert(t, r.Passed)
	assert.Equal(t, r.Explanation, "b) pooled scores")
	assert.Equal(t, m.Solution(), "b) pooled scores")
	assert.Check(t, cmp.Contains(m.Hint(), "2 parts"))
	_, ok := m.Part("c")
	assert.Assert(t, !ok)

	bad := NewMultipart(sizeProblem(), ThoughtExperiment{})
	r = bad.Check()
	assert.Assert(t, !r.Passed)
	assert.Assert(t, cmp.Panics(func() { NewMultipart(CodingProblem{}) }))
}

func Test_Bind(t *testing.T) {
	ns := NewNamespace()
	m := NewMultipart(CodingProblem{}, ThoughtExperiment{})
	names, err := Bind(ns, []Problem{sizeProblem(), ThoughtExperiment{}, m}, TutorialID(271))
	assert.NilError(t, err)
	assert.DeepEqual(t, names, []string{"q_1", "q_2", "q_3"})
	assert.DeepEqual(t, ns.Names(), names)
	b, ok := ns.Get("q_2")
	assert.Assert(t, ok)
	assert.Equal(t, b.Index, 2)
	assert.Equal(t, b.TutorialID, 271)

	p, err := ns.Lookup("q_3.b")
	assert.NilError(t, err)
	assert.Equal(t, p.Kind(), Thought)
	_, err = ns.Lookup("q_3.z")
	assert.ErrorContains(t, err, "part `z`")
	_, err = ns.Lookup("q_1.a")
	assert.ErrorContains(t, err, "does not have parts")
	_, err = ns.Lookup("q_9")
	assert.ErrorContains(t, err, "unknown problem")

	r, err := ns.Check("q_1", 2)
	assert.NilError(t, err)
	assert.Assert(t, r.Passed)

	_, err = Bind(ns, []Problem{ThoughtExperiment{}})
	assert.ErrorContains(t, err, "already bound")
	assert.Equal(t, len(ns.Names()), 3)

	names, err = Bind(ns, []Problem{ThoughtExperiment{}}, VarFormat("ex{n}"))
	assert.NilError(t, err)
	assert.DeepEqual(t, names, []string{"ex1"})
	_, err = Bind(ns, nil, VarFormat("q"))
	assert.ErrorContains(t, err, "placeholder")
}

func Test_BindDeterministic(t *testing.T) {
	a, _ := Bind(NewNamespace(), []Problem{ThoughtExperiment{}, CodingProblem{}})
	b, _ := Bind(NewNamespace(), []Problem{ThoughtExperiment{}, CodingProblem{}})
	assert.DeepEqual(t, a, b)
}
