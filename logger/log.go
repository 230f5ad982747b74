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

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level indicates the severity of an entry.
type Level int

// List of valid Level values.
const (
	Info Level = iota
	Warn
	Error
)

func (lvl Level) String() string {
	switch lvl {
	case Info:
		return "info"
	case Warn:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Tag       string
	Detail    string
	repeated  int
}

// Repeated returns the number of times the entry was logged in succession.
func (e *Entry) Repeated() int {
	return e.repeated + 1
}

func (e *Entry) String() string {
	s := strings.Builder{}
	switch e.Level {
	case Info:
		s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	default:
		s.WriteString(fmt.Sprintf("%s: %s: %s", e.Tag, e.Level, e.Detail))
	}
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded list of log entries. It is safe to use from more than
// one goroutine.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// optional writer that new entries are echoed to
	echo io.Writer

	// entries since the last call to WriteRecent()
	recentStart int
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// detail converts the detail argument of Log() to a string. errors and
// fmt.Stringer instances are handled explicitly, everything else is formatted
// with the %v verb.
func detail(d any) string {
	switch d := d.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", d)
}

// Log adds an informational entry to the log.
func (l *Logger) Log(perm Permission, tag string, d any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Info, tag, detail(d))
	}
}

// Logf adds a formatted informational entry to the log.
func (l *Logger) Logf(perm Permission, tag string, pattern string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Info, tag, fmt.Sprintf(pattern, args...))
	}
}

// Infof adds a formatted informational entry to the log.
func (l *Logger) Infof(tag string, pattern string, args ...any) {
	l.log(Info, tag, fmt.Sprintf(pattern, args...))
}

// Warnf adds a formatted warning to the log.
func (l *Logger) Warnf(tag string, pattern string, args ...any) {
	l.log(Warn, tag, fmt.Sprintf(pattern, args...))
}

// Errorf adds a formatted error to the log.
func (l *Logger) Errorf(tag string, pattern string, args ...any) {
	l.log(Error, tag, fmt.Sprintf(pattern, args...))
}

func (l *Logger) log(level Level, tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || e.Detail != detail || e.Tag != tag || e.Level != level {
		l.entries = append(l.entries, Entry{
			Timestamp: time.Now(),
			Level:     level,
			Tag:       tag,
			Detail:    detail,
		})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		trim := len(l.entries) - l.maxEntries
		l.entries = l.entries[trim:]
		l.recentStart -= trim
		if l.recentStart < 0 {
			l.recentStart = 0
		}
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.recentStart = 0
}

// Write contents of log to io.Writer. Returns false if there were no entries
// to write.
func (l *Logger) Write(output io.Writer) bool {
	l.crit.Lock()
	defer l.crit.Unlock()

	if len(l.entries) == 0 {
		return false
	}
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
	return true
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent().
func (l *Logger) WriteRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	for _, e := range l.entries[l.recentStart:] {
		io.WriteString(output, e.String())
	}
	l.recentStart = len(l.entries)
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new log entries to io.Writer as they are added. A nil writer
// stops echoing.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}

// Count returns the number of times an entry of the specified level has been
// logged, including repeats.
func (l *Logger) Count(level Level) int {
	l.crit.Lock()
	defer l.crit.Unlock()

	var n int
	for _, e := range l.entries {
		if e.Level == level {
			n += e.repeated + 1
		}
	}
	return n
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
