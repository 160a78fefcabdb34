package ir

// Block is a basic block: a straight-line sequence of instructions,
// optionally ending in a terminator (OpReturnVal / OpReturnVoid).
type Block struct {
	Insts []*Inst
	Func  *Func
}

// FirstInst returns the block's first instruction, or nil if empty.
func (b *Block) FirstInst() *Inst {
	if len(b.Insts) == 0 {
		return nil
	}
	return b.Insts[0]
}

// LastInst returns the block's last instruction (its terminator, when it has
// one), or nil if the block is empty.
func (b *Block) LastInst() *Inst {
	if len(b.Insts) == 0 {
		return nil
	}
	return b.Insts[len(b.Insts)-1]
}

// insertAt inserts inst at position idx (0 <= idx <= len(Insts)).
func (b *Block) insertAt(idx int, inst *Inst) {
	inst.block = b
	b.Insts = append(b.Insts, nil)
	copy(b.Insts[idx+1:], b.Insts[idx:])
	b.Insts[idx] = inst
}

// append adds inst at the end of the block.
func (b *Block) append(inst *Inst) {
	inst.block = b
	b.Insts = append(b.Insts, inst)
}

// indexOf returns the position of inst in Insts, or -1.
func (b *Block) indexOf(inst *Inst) int {
	for i, v := range b.Insts {
		if v == inst {
			return i
		}
	}
	return -1
}

func (b *Block) removeInst(inst *Inst) {
	idx := b.indexOf(inst)
	if idx < 0 {
		return
	}
	b.Insts = append(b.Insts[:idx], b.Insts[idx+1:]...)
	inst.block = nil
}
