package scheme

import "fmt"

// Procedure is either a *Primitive or a *Compound. The set is closed.
type Procedure interface {
	procedure()
}

type PrimitiveFunc func(args []Data) (Data, error)

// Primitive wraps a host function that receives already-evaluated arguments.
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

func (*Primitive) procedure() {}

func (p *Primitive) String() string {
	return fmt.Sprintf("<native-func %s>", p.Name)
}

// Compound is a closure: formal parameters, a body, and the environment in
// effect when the lambda was evaluated.
type Compound struct {
	Name   Symbol
	Params []Symbol
	Body   []Data
	Env    *Env
}

func (*Compound) procedure() {}

func (c *Compound) String() string {
	name := c.Name
	if name == "" {
		name = "lambda"
	}
	return fmt.Sprintf("<function %s: %v>", name, reprAll(c.Body))
}

var _procedure = Symbol("procedure")

// List returns the closure as the tagged list (procedure params body env).
func (c *Compound) List() Data {
	params := make([]Data, len(c.Params))
	for i, p := range c.Params {
		params[i] = p
	}
	return List(_procedure, List(params...), List(c.Body...), c.Env)
}

func procedureName(proc Data) string {
	switch p := proc.(type) {
	case *Primitive:
		return p.Name
	case *Compound:
		if p.Name != "" {
			return string(p.Name)
		}
	}
	return "#<lambda>"
}
