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

// Package cartridgeloader is used to specify the data that is to be attached
// to the console as a cartridge. The Loader type also looks after the
// battery backed RAM of the cartridge, which is stored alongside the
// cartridge file.
//
//	cl := cartridgeloader.NewLoader("tetris.gb")
//	err := console.AttachCartridge(cl)
//
// Loader filenames can be local files or HTTP(S) URLs. Save data is only
// ever stored for local files.
package cartridgeloader
