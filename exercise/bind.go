package exercise

import (
	"go-ml.dev/pkg/zorros"
	"sort"
	"strconv"
	"strings"
)

// DefaultVarFormat names problems q_1, q_2, ...
const DefaultVarFormat = "q_{n}"

/*
Binding is a problem bound to a variable name
*/
type Binding struct {
	Name       string
	Index      int // 1-based position in the bound list
	TutorialID int
	Problem    Problem
}

/*
Namespace keeps bound problems by variable names
*/
type Namespace struct {
	vars  map[string]Binding
	order []string
}

func NewNamespace() *Namespace {
	return &Namespace{vars: map[string]Binding{}}
}

type binding struct {
	format     string
	tutorialID int
}

type BindOption func(*binding)

/*
VarFormat sets the variable name format, {n} is replaced with the problem index
*/
func VarFormat(f string) BindOption {
	return func(b *binding) { b.format = f }
}

func TutorialID(id int) BindOption {
	return func(b *binding) { b.tutorialID = id }
}

/*
Bind registers problems in order under generated names and returns the names.
It fails without registering anything if a name is already bound
*/
func Bind(ns *Namespace, problems []Problem, opts ...BindOption) ([]string, error) {
	b := binding{format: DefaultVarFormat}
	for _, o := range opts {
		o(&b)
	}
	if !strings.Contains(b.format, "{n}") {
		return nil, zorros.Errorf("variable format `%v` does not have {n} placeholder", b.format)
	}
	names := make([]string, len(problems))
	for i := range problems {
		names[i] = strings.ReplaceAll(b.format, "{n}", strconv.Itoa(i+1))
		if _, exists := ns.vars[names[i]]; exists {
			return nil, zorros.Errorf("variable `%v` is already bound", names[i])
		}
	}
	for i, p := range problems {
		ns.vars[names[i]] = Binding{Name: names[i], Index: i + 1, TutorialID: b.tutorialID, Problem: p}
		ns.order = append(ns.order, names[i])
	}
	return names, nil
}

/*
Names returns bound names in the binding order
*/
func (ns *Namespace) Names() []string {
	return append([]string(nil), ns.order...)
}

/*
Get returns the binding of the variable name
*/
func (ns *Namespace) Get(name string) (Binding, bool) {
	b, ok := ns.vars[name]
	return b, ok
}

/*
Lookup finds a problem by the variable name or by the name of a multipart problem part: q_3.a
*/
func (ns *Namespace) Lookup(path string) (Problem, error) {
	name := path
	part := ""
	if i := strings.IndexByte(path, '.'); i >= 0 {
		name, part = path[:i], path[i+1:]
	}
	b, ok := ns.vars[name]
	if !ok {
		known := ns.Names()
		sort.Strings(known)
		return nil, zorros.Errorf("unknown problem `%v`, known problems are %v", name, known)
	}
	if part == "" {
		return b.Problem, nil
	}
	mp, ok := b.Problem.(MultipartProblem)
	if !ok {
		return nil, zorros.Errorf("problem `%v` does not have parts", name)
	}
	p, ok := mp.Part(part)
	if !ok {
		return nil, zorros.Errorf("problem `%v` does not have part `%v`, parts are %v", name, part, mp.PartNames())
	}
	return p, nil
}

/*
Check looks up the problem and checks learner values
*/
func (ns *Namespace) Check(path string, values ...interface{}) (Result, error) {
	p, err := ns.Lookup(path)
	if err != nil {
		return Result{}, err
	}
	return p.Check(values...), nil
}
