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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/debugger"
	"github.com/jetsetilly/gopherdmg/debugger/govern"
	"github.com/jetsetilly/gopherdmg/debugger/terminal"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherdmg/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherdmg/digest"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/modalflag"
	"github.com/jetsetilly/gopherdmg/performance/limiter"
	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/screenshot"
	"github.com/jetsetilly/gopherdmg/statsview"
	"github.com/jetsetilly/gopherdmg/version"
	"golang.org/x/term"
)

// the refresh rate of the real hardware.
const framesPerSecond = 59.7275

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "DEBUG":
		err = debug(md, output)

	case "INFO":
		err = info(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// newPreferences creates the hardware preferences with values from the
// prefs string taking priority over the values in the preferences file.
func newPreferences(prefsString string, output io.Writer) (*preferences.Preferences, error) {
	err := prefs.PushCommandLineStack(prefsString)
	if err != nil {
		return nil, err
	}
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}()
	return preferences.NewPreferences()
}

func cartridgeArg(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, curated.Errorf("cartridge required for %s mode", md)
	case 1:
		return cartridgeloader.NewLoader(md.GetArg(0)), nil
	}
	return cartridgeloader.Loader{}, curated.Errorf("too many arguments for %s mode", md)
}

// cartridgeHelp describes the cartridge argument for the modes that need one.
func cartridgeHelp() string {
	ext := make([]string, 0, len(cartridgeloader.FileExtensions))
	for _, e := range cartridgeloader.FileExtensions {
		ext = append(ext, strings.ToLower(e))
	}
	return fmt.Sprintf("The cartridge argument is a filename or an http(s) URL.\nRecognised file extensions: %s", strings.Join(ext, " "))
}

func setLogEcho(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(cartridgeHelp())

	frames := md.AddInt("frames", 0, "number of frames to run (0 runs until interrupted)")
	fps := md.AddFloat64("fps", framesPerSecond, "frame rate limit (0 for no limit)")
	serial := md.AddBool("serial", true, "echo serial output")
	log := md.AddBool("log", false, "echo debugging log")
	stats := md.AddBool("statsview", false, "run stats server")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	scale := md.AddInt("scale", 2, "scaling of the screenshot")
	dig := md.AddBool("digest", false, "print digest of video output when emulation ends")
	prefsString := md.AddString("prefs", "", "preferences for this run (eg. hardware.strictopcodes::true)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log, output)

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prf, err := newPreferences(*prefsString, output)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	con := hardware.NewConsole(prf)
	if *serial {
		con.Mem.Serial.SetEcho(output)
	}

	err = con.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	lim := limiter.NewFPSLimiter(*fps)
	frameNum := con.FrameNum

	var vid *digest.Video
	if *dig {
		vid = digest.NewVideo()
	}

	err = con.Run(func() (govern.State, error) {
		if con.FrameNum == frameNum {
			return govern.Running, nil
		}
		frameNum = con.FrameNum

		if vid != nil {
			err := vid.NewFrame(frameNum, con.FrameBuffer())
			if err != nil {
				return govern.Ending, err
			}
		}

		if *frames > 0 && frameNum >= *frames {
			return govern.Ending, nil
		}

		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		lim.Wait()

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if vid != nil {
		fmt.Fprintf(output, "%s\n", vid.Hash())
	}

	if *shot != "" {
		err = screenshot.Save(con.FrameBuffer(), *shot, *scale)
		if err != nil {
			return err
		}
	}

	return con.PersistSaveData()
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(cartridgeHelp())

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log")
	stats := md.AddBool("statsview", false, "run stats server")
	prefsString := md.AddString("prefs", "", "preferences for this session (eg. hardware.randstate::true)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log, output)

	prf, err := newPreferences(*prefsString, output)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		// the color terminal requires a real terminal for input
		if term.IsTerminal(int(os.Stdin.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = &plainterm.PlainTerminal{}
		}
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unknown terminal type (%s)", *termType)
	}

	con := hardware.NewConsole(prf)
	dbg := debugger.NewDebugger(con, trm)

	var cartload *cartridgeloader.Loader
	if len(md.RemainingArgs()) > 0 {
		l, err := cartridgeArg(md)
		if err != nil {
			return err
		}
		cartload = &l
	}

	err = dbg.Start(cartload)
	if err != nil {
		return err
	}

	return con.PersistSaveData()
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(cartridgeHelp())

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	err = cartload.Load()
	if err != nil {
		return err
	}

	hdr, err := cartridge.NewHeader(cartload.Data)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", hdr)
	fmt.Fprintf(output, "sha1: %s\n", cartload.Hash)

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
