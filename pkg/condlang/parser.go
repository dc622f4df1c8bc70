package condlang

// parser holds the state shared by the grammar productions for one Run.
// Each production advances pos in place and returns nil or the first
// failure it hit.
type parser struct {
	src    string
	pos    int
	values Stack
	ops    Stack

	intrinsics []Intrinsic
	hasher     Hasher
	userData   any

	depth    int
	maxDepth int
	onCall   func(name string, result bool)
}

func (p *parser) skipWhitespace() {
	p.pos = whitespace.Skip(p.src, p.pos)
}

// peek returns the byte at the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) consume(c byte, reason string) *parseError {
	if p.peek() != c {
		return syntaxError(p.pos, reason)
	}
	p.pos++
	return nil
}

func (p *parser) enter() *parseError {
	p.depth++
	if p.depth > p.maxDepth {
		return overflow(Nesting)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseCondition parses a complete expression; only whitespace may follow it.
func (p *parser) parseCondition() *parseError {
	if err := p.parseLogical(); err != nil {
		return err
	}
	p.skipWhitespace()
	if p.pos != len(p.src) {
		return syntaxError(p.pos, "unexpected trailing input")
	}
	return nil
}

func (p *parser) parseLogical() *parseError {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if err := p.parseTernary(); err != nil {
		return err
	}
	return p.parseLogicalRest()
}

// parseLogicalRest parses an optional '&&' or '||' followed by a full
// Logical. The right side is parsed before the operator is applied, so
// "a && b || c" groups as "a && (b || c)".
func (p *parser) parseLogicalRest() *parseError {
	p.skipWhitespace()

	var op Operator
	switch p.peek() {
	case '&':
		p.pos++
		if err := p.consume('&', "expected '&&'"); err != nil {
			return err
		}
		op = OpAnd
	case '|':
		p.pos++
		if err := p.consume('|', "expected '||'"); err != nil {
			return err
		}
		op = OpOr
	default:
		return nil
	}

	if err := p.pushOperator(op); err != nil {
		return err
	}
	if err := p.parseLogical(); err != nil {
		return err
	}
	return p.evaluate()
}

func (p *parser) parseTernary() *parseError {
	p.skipWhitespace()
	if p.peek() != '!' {
		return p.parseIntrinsic()
	}

	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	p.pos++
	if err := p.pushOperator(OpNegate); err != nil {
		return err
	}
	if err := p.parseTernary(); err != nil {
		return err
	}
	return p.evaluate()
}

func (p *parser) parseIntrinsic() *parseError {
	p.skipWhitespace()

	if p.peek() == '(' {
		p.pos++
		if err := p.parseLogical(); err != nil {
			return err
		}
		p.skipWhitespace()
		return p.consume(')', "expected ')'")
	}

	start := p.pos
	if err := p.parseIdentifier(); err != nil {
		return err
	}
	callName := p.src[start:p.pos]
	name, err := p.values.PopID()
	if err != nil {
		return stackError(err, ValueStack)
	}

	intrinsic := lookup(p.intrinsics, name)
	if intrinsic == nil {
		return &parseError{status: StatusUndefinedIntrinsic, name: callName, offset: start}
	}

	p.skipWhitespace()
	if err := p.consume('(', "expected '('"); err != nil {
		return err
	}
	n, perr := p.parseParameters()
	if perr != nil {
		return perr
	}
	p.skipWhitespace()
	if err := p.consume(')', "expected ')'"); err != nil {
		return err
	}

	args, err := p.values.args(n)
	if err != nil {
		return stackError(err, ValueStack)
	}
	result := intrinsic.Predicate.Call(args, p.userData)
	if p.onCall != nil {
		p.onCall(callName, result)
	}

	for i := 0; i < n; i++ {
		if _, err := p.values.PopID(); err != nil {
			return stackError(err, ValueStack)
		}
	}
	if err := p.values.PushBool(result); err != nil {
		return stackError(err, ValueStack)
	}
	return nil
}

// parseParameters pushes one hash per comma-separated identifier and
// returns how many were pushed.
func (p *parser) parseParameters() (int, *parseError) {
	n := 0
	for {
		p.skipWhitespace()
		if err := p.parseIdentifier(); err != nil {
			return n, err
		}
		n++

		p.skipWhitespace()
		if p.peek() != ',' {
			return n, nil
		}
		p.pos++
	}
}

// parseIdentifier scans the longest run of identifier characters and
// pushes its hash onto the value stack.
func (p *parser) parseIdentifier() *parseError {
	start := p.pos
	p.pos = identifierChars.Skip(p.src, p.pos)
	if p.pos == start {
		return syntaxError(start, "expected identifier")
	}
	if err := p.values.PushID(p.hasher.Hash(p.src[start:p.pos])); err != nil {
		return stackError(err, ValueStack)
	}
	return nil
}
