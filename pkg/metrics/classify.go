package metrics

import "strings"

// CommandOp is the flash operation a command counter attribute refers to.
type CommandOp int

// Flash operations counted by the FTL.
const (
	OpRead CommandOp = iota
	OpProgram
	OpErase
)

var opTokens = []struct {
	op    CommandOp
	token string
}{
	{OpRead, "Read_CMD"},
	{OpProgram, "Program_CMD"},
	{OpErase, "Erase_CMD"},
}

// CommandClass describes one classified FTL command counter attribute.
type CommandClass struct {
	Op CommandOp
	// Mapping is true for commands issued on behalf of address mapping
	// rather than ordinary I/O.
	Mapping bool
}

// ClassifyCommandAttr classifies an FTL attribute name as a flash command
// counter. The attribute sets of MQSim result files vary between builds, so
// classification matches name fragments instead of enumerating exact names:
// any attribute carrying "Read_CMD" counts ordinary reads unless it also
// carries the "For_Mapping" marker, in which case it must carry the combined
// "Read_CMD_For_Mapping" fragment to count as a mapping read. Program and
// erase counters classify symmetrically. Attributes with no command fragment,
// and attributes whose "For_Mapping" marker is detached from the command
// fragment, are not command counters.
func ClassifyCommandAttr(name string) (CommandClass, bool) {
	for _, candidate := range opTokens {
		if !strings.Contains(name, candidate.token) {
			continue
		}
		if strings.Contains(name, "For_Mapping") {
			if strings.Contains(name, candidate.token+"_For_Mapping") {
				return CommandClass{Op: candidate.op, Mapping: true}, true
			}
			return CommandClass{}, false
		}
		return CommandClass{Op: candidate.op, Mapping: false}, true
	}
	return CommandClass{}, false
}
