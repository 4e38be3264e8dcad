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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace emulation of the console to the frame rate of the
// real hardware.
//
//	lim := limiter.NewFPSLimiter(59.73)
//	for {
//		// emulate one frame
//		lim.Wait()
//	}
//
// A limit of zero or less disables the limiter.
package limiter

import (
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	framesPerSecond float64
	secondsPerFrame time.Duration

	// the time at which the next frame should begin
	next time.Time
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond <= 0 {
		lim.secondsPerFrame = 0
	} else {
		lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
	}
	lim.next = time.Now().Add(lim.secondsPerFrame)
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Wait will block until the next frame is due. If the frame is already late
// then the schedule is reset rather than trying to catch up.
func (lim *FpsLimiter) Wait() {
	if lim.secondsPerFrame == 0 {
		return
	}

	now := time.Now()
	if now.Before(lim.next) {
		time.Sleep(lim.next.Sub(now))
		lim.next = lim.next.Add(lim.secondsPerFrame)
		return
	}

	lim.next = now.Add(lim.secondsPerFrame)
}

// HasWaited returns true if the next frame is due.
func (lim *FpsLimiter) HasWaited() bool {
	if lim.secondsPerFrame == 0 {
		return true
	}
	if time.Now().Before(lim.next) {
		return false
	}
	lim.next = time.Now().Add(lim.secondsPerFrame)
	return true
}
