package mir

import "github.com/retroenv/asm8051/internal/parser"

// Entry is one lowered instruction pinned to the address it will occupy.
type Entry struct {
	Addr  uint16
	Instr Instruction
}

// MIR is the result of the layout pass: every program line has been
// lowered to an Instruction at a concrete address, and every label and
// EQU name is bound in Symtab. Entries are in program order. An ORG may
// set any address, lower ones included, so program order is address
// order only when every ORG moves forward.
type MIR struct {
	Entries []Entry
	Symtab  map[string]int32
}

// Build runs the layout pass over a parsed program: it walks lines in
// order, tracking the current emission address, binding labels and EQU
// names into a symbol table, and lowering each code or data line to an
// Instruction at its address. Operand immediates and jump targets that
// name a label or EQU are left unresolved (DataRef/AddrRef) until the
// later encode pass, since a line can reference a label defined further
// down in the source.
func Build(program *parser.Program) (*MIR, error) {
	m := &MIR{Symtab: make(map[string]int32)}
	var addr uint16

	for _, line := range program.Lines {
		switch l := line.(type) {
		case parser.OrgLine:
			addr = l.Address

		case parser.EquDef:
			if err := m.bind(l.ID, int32(l.Value)); err != nil {
				return nil, err
			}

		case parser.ProgramLine:
			if l.HasLabel {
				if err := m.bind(l.Label, int32(addr)); err != nil {
					return nil, err
				}
			}
			if l.Body == nil {
				continue
			}

			instr, n, err := lowerBody(l.Body)
			if err != nil {
				return nil, err
			}
			m.Entries = append(m.Entries, Entry{Addr: addr, Instr: instr})
			addr += uint16(n)
		}
	}

	return m, nil
}

func (m *MIR) bind(name string, value int32) error {
	if _, exists := m.Symtab[name]; exists {
		return &DuplicateIdentifierError{Name: name}
	}
	m.Symtab[name] = value
	return nil
}

func lowerBody(body parser.LineBody) (Instruction, int, error) {
	switch b := body.(type) {
	case parser.CodeLine:
		instr, err := Lower(b.Operator, b.Operands)
		if err != nil {
			return Instruction{}, 0, err
		}
		return instr, instr.Bytes(), nil

	case parser.ValueDef:
		var raw []byte
		for _, v := range b.Values {
			raw = append(raw, v.Bytes()...)
		}
		return Instruction{Kind: KindBytes, Raw: raw}, len(raw), nil

	default:
		panic("mir: unknown line body type")
	}
}

// Record is a resolved (address, bytes) pair, ready for hex emission.
type Record struct {
	Addr  uint16
	Bytes []byte
}

// Encode runs the symbol-resolution pass: every Entry's Instruction is
// encoded against the now-complete symbol table, turning deferred label
// and EQU references into concrete bytes. Entries whose addresses run on
// from the previous one without a gap (i.e. no intervening ORG jump)
// are merged into a single Record, since the hex writer emits one
// record per contiguous placed span rather than per source line.
func (m *MIR) Encode() ([]Record, error) {
	records := make([]Record, 0, len(m.Entries))
	for _, e := range m.Entries {
		bs, err := e.Instr.Encode(m.Symtab, e.Addr)
		if err != nil {
			return nil, err
		}
		if n := len(records); n > 0 {
			last := &records[n-1]
			if e.Addr == last.Addr+uint16(len(last.Bytes)) {
				last.Bytes = append(last.Bytes, bs...)
				continue
			}
		}
		records = append(records, Record{Addr: e.Addr, Bytes: bs})
	}
	return records, nil
}
