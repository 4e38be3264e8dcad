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

// Package statsview provides an HTTP server running locally offering runtime
// statistics. Underlying functionality provided by
// "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12800/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12800/debug/pprof/
package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the stats server.
const Address = "localhost:12800"

const url = "/debug/statsview"

var launched sync.Once

// Launch a new goroutine running the statsview. Subsequent calls to Launch()
// will only print the address of the server.
func Launch(output io.Writer) {
	launched.Do(func() {
		go func() {
			viewer.SetConfiguration(viewer.WithAddr(Address))
			mgr := statsview.New()
			mgr.Start()
		}()
	})

	if output != nil {
		fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	}
}
