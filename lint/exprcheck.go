package lint

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dpotapov/go-htmllint/lint/rules"
)

// exprCheck is a CheckFunc compiled from a rules.CheckSpec.
type exprCheck struct {
	spec rules.CheckSpec
	code Code
	prog *vm.Program
	vm   vm.VM
	env  map[string]any
	el   *Element
}

// checkEnv returns the environment used for compiling and running check
// expressions. The functions read the element under check.
func (c *exprCheck) checkEnv() map[string]any {
	return map[string]any{
		"tag":   "",
		"attrs": map[string]string{},
		"has": func(name string) bool {
			return c.el != nil && c.el.Has(name)
		},
		"attr": func(name string) string {
			if c.el == nil {
				return ""
			}
			v, _ := c.el.Attr(name)
			return v
		},
	}
}

// compileCheck compiles spec into a check and the code info of the defect it reports.
func compileCheck(spec rules.CheckSpec) (*exprCheck, codeInfo, error) {
	category := Helper
	if spec.Category != "" {
		c, err := ParseCategory(spec.Category)
		if err != nil {
			return nil, codeInfo{}, fmt.Errorf("check %s on <%s>: %w", spec.Code, spec.Element, err)
		}
		category = c
	}

	c := &exprCheck{spec: spec, code: Code(spec.Code)}
	c.env = c.checkEnv()

	prog, err := expr.Compile(spec.When, expr.Env(c.env), expr.AsBool())
	if err != nil {
		return nil, codeInfo{}, fmt.Errorf("check %s on <%s>: %w", spec.Code, spec.Element, err)
	}
	c.prog = prog

	msg := spec.Message
	if msg == "" {
		msg = "<${tag}> fails check " + spec.Code
	}
	return c, codeInfo{category: category, message: msg}, nil
}

// run evaluates the expression for el. Evaluation failures are returned, not reported.
func (c *exprCheck) run(el *Element, report func(code Code, ctx Context)) error {
	attrs := make(map[string]string, len(el.Attrs))
	ctx := Context{"tag": el.Tag}
	for _, a := range el.Attrs {
		if _, ok := attrs[a.Key]; !ok {
			attrs[a.Key] = a.Val
		}
		if _, ok := ctx[a.Key]; !ok {
			ctx[a.Key] = a.Val
		}
	}

	c.el = el
	defer func() { c.el = nil }()
	c.env["tag"] = el.Tag
	c.env["attrs"] = attrs

	out, err := c.vm.Run(c.prog, c.env)
	if err != nil {
		return fmt.Errorf("check %s on <%s>: %w", c.spec.Code, el.Tag, err)
	}
	if ok, _ := out.(bool); ok {
		report(c.code, ctx)
	}
	return nil
}
