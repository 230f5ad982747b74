// This file is part of Busmaster.
//
// Busmaster is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Busmaster is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Busmaster.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview runs a local HTTP server offering runtime statistics for
// the busmaster process. Useful for watching goroutine and heap behaviour
// while the refresh ticker is running for a long time.
//
// The charts are provided by "github.com/go-echarts/statsview" and are
// viewable at:
//
//	localhost:18080/debug/statsview
//
// Standard Go pprof statistics are available at:
//
//	localhost:18080/debug/pprof/
package statsview
