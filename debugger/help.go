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

// debugger keywords.
const (
	cmdStep       = "STEP"
	cmdRun        = "RUN"
	cmdReset      = "RESET"
	cmdQuit       = "QUIT"
	cmdCPU        = "CPU"
	cmdPeek       = "PEEK"
	cmdPoke       = "POKE"
	cmdMemMap     = "MEMMAP"
	cmdCartridge  = "CARTRIDGE"
	cmdDisasm     = "DISASM"
	cmdBreak      = "BREAK"
	cmdList       = "LIST"
	cmdClear      = "CLEAR"
	cmdJoypad     = "JOYPAD"
	cmdSerial     = "SERIAL"
	cmdLog        = "LOG"
	cmdMemviz     = "MEMVIZ"
	cmdScreenshot = "SCREENSHOT"
	cmdScript     = "SCRIPT"
	cmdHelp       = "HELP"
)

var help = map[string]string{
	cmdStep:       "Step forward by one or more CPU instructions. An empty line is the same as STEP",
	cmdRun:        "Run the emulation until a breakpoint is reached or until interrupted (ctrl-c). An optional number limits the run to that many frames",
	cmdReset:      "Reset the console",
	cmdQuit:       "Leave the debugger",
	cmdCPU:        "Display the CPU registers. CPU SET <register> <value> changes the value of a register",
	cmdPeek:       "Read one or more addresses from the address space",
	cmdPoke:       "Write a value to an address in the address space. Writes to the ROM area are sent to the cartridge bank controller",
	cmdMemMap:     "Display the address space map or the area of a single address",
	cmdCartridge:  "Display information about the cartridge. HEADER shows the full cartridge header and BANKS the currently mapped banks",
	cmdDisasm:     "Disassemble instructions starting at the address (default PC). An optional number limits the number of instructions",
	cmdBreak:      "Add a breakpoint. The emulation will halt when the program counter reaches the address",
	cmdList:       "List all breakpoints",
	cmdClear:      "Clear all breakpoints",
	cmdJoypad:     "Press or release a joypad key. Keys are RIGHT, LEFT, UP, DOWN, A, B, SELECT and START",
	cmdSerial:     "Display the bytes sent over the serial port since reset",
	cmdLog:        "Display the log. LOG TAIL <n> displays only the most recent entries and LOG CLEAR empties the log",
	cmdMemviz:     "Write a graphviz representation of the last CPU instruction (RESULT) or the cartridge header (HEADER) to a file",
	cmdScreenshot: "Save the most recent frame to a PNG file. The file name and an integer scaling factor are optional",
	cmdScript:     "Run a Lua script. Scripts can call debugger commands with the command() function. SCRIPT <file> QUIET suppresses all output except errors",
	cmdHelp:       "List commands or display help for a single command",
}
