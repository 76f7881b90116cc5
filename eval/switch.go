package eval

import (
	"github.com/mewisme/mew/parser"
	"github.com/mewisme/mew/scope"
)

// execSwitch compares the discriminant against each claw value in source
// order with ==; the first match starts execution, which falls through
// case boundaries (no implicit clawt) until a clawt or the end of the
// switch. A break anywhere inside terminates the switch immediately.
func (it *Interp) execSwitch(s *parser.SwitchStatement, env *scope.Scope) (completion, error) {
	discriminant, err := it.evalExpression(s.Discriminant, env)
	if err != nil {
		return completion{}, err
	}

	start := -1
	for i, c := range s.Cases {
		if c.Value == nil { // default, matched separately below
			continue
		}
		cv, err := it.evalExpression(c.Value, env)
		if err != nil {
			return completion{}, err
		}
		if valuesEqual(discriminant, cv) {
			start = i
			break
		}
	}
	if start == -1 {
		start = s.DefaultIdx
	}
	if start == -1 {
		return normalCompletion, nil
	}

	switchEnv := scope.New(env)
	for i := start; i < len(s.Cases); i++ {
		for _, stmt := range s.Cases[i].Statements {
			c, err := it.execStatement(stmt, switchEnv)
			if err != nil {
				return completion{}, err
			}
			switch c.sig {
			case sigBreak:
				return normalCompletion, nil
			case sigReturn, sigContinue:
				return c, nil
			}
		}
		if s.Cases[i].Terminated {
			return normalCompletion, nil
		}
	}
	return normalCompletion, nil
}
