// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/debugger/govern"
	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/commandline"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/execution"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	con  *hardware.Console
	term terminal.Terminal

	state govern.State

	breakpoints *breakpoints

	// the emulation has stopped on a breakpoint
	halted bool

	// signals from the operating system
	events *terminal.ReadEvents

	// the number of nested SCRIPT commands
	scriptDepth int

	// a SCRIPT QUIET command is running. nested scripts do not unsilence
	// the terminal
	silenced bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session.
func NewDebugger(con *hardware.Console, term terminal.Terminal) *Debugger {
	return &Debugger{
		con:         con,
		term:        term,
		state:       govern.EmulatorStart,
		breakpoints: newBreakpoints(),
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the main debugger sequence. The cartridge is attached to the console
// before the input loop begins. The cartridge is optional, the emulation can
// be debugged without one.
func (dbg *Debugger) Start(cartload *cartridgeloader.Loader) error {
	dbg.state = govern.Initialising

	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	if cartload != nil {
		err = dbg.con.AttachCartridge(*cartload)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, dbg.con.Mem.Cart.Summary())
	}

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	dbg.state = govern.Paused

	err = dbg.inputLoop()
	if err != nil {
		return err
	}

	err = dbg.con.PersistSaveData()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

func (dbg *Debugger) buildPrompt() terminal.Prompt {
	r := execution.Decode(dbg.con.Mem, dbg.con.CPU.PC.Address())
	return terminal.Prompt{
		Content: fmt.Sprintf("%04x %s", r.Address, r.Mnemonic()),
		Break:   dbg.halted,
	}
}

// inputLoop reads and acts upon input until the QUIT command is given or the
// input is exhausted.
func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		input, err := dbg.term.TermRead(dbg.buildPrompt(), dbg.events)
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserAbort) {
				dbg.state = govern.Ending
				continue
			}

			// an interrupt at the prompt ends the session when the terminal
			// is not interactive. otherwise it is just noted
			if curated.Is(err, terminal.UserInterrupt) {
				if !dbg.term.IsInteractive() {
					dbg.state = govern.Ending
					continue
				}
				dbg.printLine(terminal.StyleFeedback, "use QUIT to leave the debugger")
				continue
			}

			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}
