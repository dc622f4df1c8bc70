package condlang

// Operator is a pending logical operation recorded on the operator stack.
type Operator byte

// Operator tags.
const (
	OpAnd Operator = iota
	OpOr
	OpNegate
)

// String returns the operator's source spelling.
func (op Operator) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpNegate:
		return "!"
	default:
		return "?"
	}
}

func (p *parser) pushOperator(op Operator) *parseError {
	if err := p.ops.pushByte(byte(op)); err != nil {
		return stackError(err, OperatorStack)
	}
	return nil
}

// evaluate pops the most recent operator and applies it to the value
// stack, leaving a single boolean in place of its operands.
func (p *parser) evaluate() *parseError {
	tag, err := p.ops.popByte()
	if err != nil {
		return stackError(err, OperatorStack)
	}

	var result bool
	switch op := Operator(tag); op {
	case OpNegate:
		v, err := p.values.PopBool()
		if err != nil {
			return stackError(err, ValueStack)
		}
		result = !v
	case OpAnd, OpOr:
		a, err := p.values.PopBool()
		if err != nil {
			return stackError(err, ValueStack)
		}
		b, err := p.values.PopBool()
		if err != nil {
			return stackError(err, ValueStack)
		}
		if op == OpAnd {
			result = a && b
		} else {
			result = a || b
		}
	default:
		return internalError(ErrUnknownOperator)
	}

	if err := p.values.PushBool(result); err != nil {
		return stackError(err, ValueStack)
	}
	return nil
}
