package y2020

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 18, solveDay18) }

// exprParser is a precedence-climbing evaluator over single-digit operands,
// +, * and parentheses. prec maps each operator to its binding strength.
type exprParser struct {
	src  string
	pos  int
	prec map[byte]int
}

func (p *exprParser) peek() byte {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.pos == len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) operand() (int, error) {
	switch ch := p.peek(); {
	case ch == '(':
		p.pos++
		v, err := p.expr(0)
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, puzzle.Malformed("missing ) at %d in %q", p.pos, p.src)
		}
		p.pos++
		return v, nil
	case ch >= '0' && ch <= '9':
		v := 0
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			v = v*10 + int(p.src[p.pos]-'0')
			p.pos++
		}
		return v, nil
	default:
		return 0, puzzle.Malformed("unexpected %q at %d in %q", ch, p.pos, p.src)
	}
}

func (p *exprParser) expr(minPrec int) (int, error) {
	lhs, err := p.operand()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		prec, ok := p.prec[op]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		p.pos++
		rhs, err := p.expr(prec + 1)
		if err != nil {
			return 0, err
		}
		if op == '+' {
			lhs += rhs
		} else {
			lhs *= rhs
		}
	}
}

func evaluate(s string, prec map[byte]int) (int, error) {
	p := &exprParser{src: s, prec: prec}
	v, err := p.expr(0)
	if err != nil {
		return 0, err
	}
	if p.peek() != 0 {
		return 0, puzzle.Malformed("trailing %q in %q", p.src[p.pos:], s)
	}
	return v, nil
}

var (
	samePrecedence = map[byte]int{'+': 1, '*': 1}
	additionFirst  = map[byte]int{'+': 2, '*': 1}
)

func solveDay18(input string) (puzzle.Answer, error) {
	flat, adv := 0, 0
	for _, line := range parse.Lines(input) {
		a, err := evaluate(line, samePrecedence)
		if err != nil {
			return puzzle.Answer{}, err
		}
		b, err := evaluate(line, additionFirst)
		if err != nil {
			return puzzle.Answer{}, err
		}
		flat += a
		adv += b
	}
	return puzzle.Answer{Part1: flat, Part2: adv}, nil
}
