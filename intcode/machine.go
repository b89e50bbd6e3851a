package intcode

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Machine is one Intcode computer.
type Machine struct {
	mem   []int
	ip    int
	base  int
	in    []int
	out   []int
	state State
}

// Parse reads a comma-separated program.
func Parse(program string) (*Machine, error) {
	program = strings.TrimSpace(program)
	if program == "" {
		return nil, puzzle.Malformed("empty intcode program")
	}
	parts := strings.Split(program, ",")
	mem := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, puzzle.Malformed("intcode word %d: %q", i, p)
		}
		mem[i] = n
	}
	return New(mem), nil
}

// New returns a machine running a copy of mem.
func New(mem []int) *Machine {
	return &Machine{mem: slices.Clone(mem)}
}

// Clone returns an independent copy including pending input and output.
func (m *Machine) Clone() *Machine {
	c := *m
	c.mem = slices.Clone(m.mem)
	c.in = slices.Clone(m.in)
	c.out = slices.Clone(m.out)
	return &c
}

// State reports why the last Run returned.
func (m *Machine) State() State { return m.state }

// Input queues values for subsequent input instructions.
func (m *Machine) Input(v ...int) {
	m.in = append(m.in, v...)
	if m.state == NeedsInput {
		m.state = Ready
	}
}

// Output drains and returns everything written since the last call.
func (m *Machine) Output() []int {
	out := m.out
	m.out = nil
	return out
}

// Read returns memory at addr; unwritten memory reads as 0.
func (m *Machine) Read(addr int) int {
	if addr < 0 || addr >= len(m.mem) {
		return 0
	}
	return m.mem[addr]
}

// Write stores v at addr, growing memory as needed.
func (m *Machine) Write(addr, v int) error {
	if addr < 0 {
		return fmt.Errorf("%w: %d", ErrBadAddress, addr)
	}
	if addr >= len(m.mem) {
		m.mem = append(m.mem, make([]int, addr-len(m.mem)+1)...)
	}
	m.mem[addr] = v
	return nil
}

// Run executes until the machine halts or waits for input.
func (m *Machine) Run() (State, error) {
	if m.state == Halted {
		return Halted, ErrHalted
	}
	for {
		instr := m.Read(m.ip)
		op := instr % 100
		switch op {
		case opAdd, opMul, opLess, opEquals:
			a, err := m.param(instr, 1)
			if err != nil {
				return m.state, err
			}
			b, err := m.param(instr, 2)
			if err != nil {
				return m.state, err
			}
			var v int
			switch op {
			case opAdd:
				v = a + b
			case opMul:
				v = a * b
			case opLess:
				v = b2i(a < b)
			case opEquals:
				v = b2i(a == b)
			}
			if err := m.store(instr, 3, v); err != nil {
				return m.state, err
			}
			m.ip += 4
		case opIn:
			if len(m.in) == 0 {
				m.state = NeedsInput
				return m.state, nil
			}
			if err := m.store(instr, 1, m.in[0]); err != nil {
				return m.state, err
			}
			m.in = m.in[1:]
			m.ip += 2
		case opOut:
			a, err := m.param(instr, 1)
			if err != nil {
				return m.state, err
			}
			m.out = append(m.out, a)
			m.ip += 2
		case opJumpT, opJumpF:
			a, err := m.param(instr, 1)
			if err != nil {
				return m.state, err
			}
			b, err := m.param(instr, 2)
			if err != nil {
				return m.state, err
			}
			if (a != 0) == (op == opJumpT) {
				m.ip = b
			} else {
				m.ip += 3
			}
		case opRelBase:
			a, err := m.param(instr, 1)
			if err != nil {
				return m.state, err
			}
			m.base += a
			m.ip += 2
		case opHalt:
			m.state = Halted
			return m.state, nil
		default:
			return m.state, fmt.Errorf("%w: %d at %d", ErrBadOpcode, instr, m.ip)
		}
	}
}

// RunWith queues input, runs, and returns the drained output.
func (m *Machine) RunWith(input ...int) ([]int, error) {
	m.Input(input...)
	if _, err := m.Run(); err != nil {
		return nil, err
	}
	return m.Output(), nil
}

func mode(instr, n int) int {
	div := 100
	for i := 1; i < n; i++ {
		div *= 10
	}
	return instr / div % 10
}

// param reads the n-th parameter of the current instruction.
func (m *Machine) param(instr, n int) (int, error) {
	raw := m.Read(m.ip + n)
	switch mode(instr, n) {
	case 0:
		if raw < 0 {
			return 0, fmt.Errorf("%w: %d", ErrBadAddress, raw)
		}
		return m.Read(raw), nil
	case 1:
		return raw, nil
	case 2:
		if m.base+raw < 0 {
			return 0, fmt.Errorf("%w: %d", ErrBadAddress, m.base+raw)
		}
		return m.Read(m.base + raw), nil
	}
	return 0, fmt.Errorf("%w: %d at %d", ErrBadMode, instr, m.ip)
}

// store writes v to the address named by the n-th parameter.
func (m *Machine) store(instr, n, v int) error {
	raw := m.Read(m.ip + n)
	switch mode(instr, n) {
	case 0:
		return m.Write(raw, v)
	case 2:
		return m.Write(m.base+raw, v)
	}
	return fmt.Errorf("%w: write in mode %d at %d", ErrBadMode, mode(instr, n), m.ip)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
