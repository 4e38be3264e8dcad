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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	mu       sync.Mutex
	geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control the SIGWINCH handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(et.input.Fd(), &et.canAttr)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	_ = et.UpdateGeometry()

	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	if et.terminateHandlerSig == nil {
		return
	}
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
	et.CanonicalMode()
}

// TermPrint writes the string to the output file.
func (et *EasyTerm) TermPrint(s string) {
	et.output.WriteString(s)
}

// Write implements the io.Writer interface.
func (et *EasyTerm) Write(p []byte) (int, error) {
	return et.output.Write(p)
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.mu.Lock()
	defer et.mu.Unlock()
	et.geometry.Rows = ws.Row
	et.geometry.Cols = ws.Col

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (et *EasyTerm) Geometry() TermGeometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// SuspendProcess manually suspends the current process. This is useful if
// the terminal is in raw mode and the terminal is given the suspend signal.
func SuspendProcess() {
	p, err := os.FindProcess(os.Getppid())
	if err != nil {
		return
	}
	_ = p.Signal(syscall.SIGTSTP)
}
