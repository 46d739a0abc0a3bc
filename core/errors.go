package core

import "fmt"

// DecodeError is a fatal decode error: the raw word at pc did not decode
// to any known identifier.
type DecodeError struct {
	PC  uint64
	Raw uint32
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("illegal instruction at pc=0x%016x word=0x%08x", e.PC, e.Raw)
}

// SemanticError is a fatal semantic error: execution attempted something
// outside the modeled subset.
type SemanticError struct {
	PC     uint64
	Raw    uint32
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at pc=0x%016x word=0x%08x: %s", e.PC, e.Raw, e.Reason)
}
