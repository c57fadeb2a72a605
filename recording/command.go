package recording

import (
	"fmt"

	"github.com/gogpu/euclid"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdCreate CommandType = iota // Entity constructed
	CmdShow                      // Entity made visible
	CmdDraw                      // Entity drawn in a frame
)

var commandTypeNames = [...]string{
	CmdCreate: "Create",
	CmdShow:   "Show",
	CmdDraw:   "Draw",
}

// String returns the command name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is one recorded renderer request.
type Command struct {
	Type CommandType

	// Frame is the tick the command belongs to. Commands issued outside a
	// tick (construction) carry the number of the last completed tick.
	Frame uint64

	ID euclid.ID

	// Snapshot is set for CmdCreate and CmdDraw.
	Snapshot euclid.Snapshot
}

// Frame is the set of entities drawn during one tick, in draw order.
type Frame struct {
	Tick   uint64
	Shapes []euclid.Snapshot
}
