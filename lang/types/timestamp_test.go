// LKit -- a simple, embeddable expression language
// Copyright (C) 2012+ the LKit project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package types

import (
	"testing"
	"time"
)

// localUSec is what the date-bearing forms are expected to produce: the
// local-time microseconds since the epoch.
func localUSec(year int, month time.Month, day, hr, min, sec int) uint64 {
	return uint64(time.Date(year, month, day, hr, min, sec, 0, time.Local).UnixMicro())
}

func TestParseTimestamp1(t *testing.T) {
	testCases := map[string]uint64{
		"2012-03-21 11:45:16":        localUSec(2012, time.March, 21, 11, 45, 16),
		"2012-03-21 11:45:16.123456": localUSec(2012, time.March, 21, 11, 45, 16) + 123456,
		"2012-03-21":                 localUSec(2012, time.March, 21, 0, 0, 0),
		"11:45:16":                   uint64(((11*60+45)*60 + 16)) * 1000000,
		"11:45:16.123456":            42316123456,
		"00:00:01":                   1000000,
	}
	for s, exp := range testCases {
		got, err := ParseTimestamp(s)
		if err != nil {
			t.Errorf("could not parse `%s`: %v", s, err)
			continue
		}
		if got != exp {
			t.Errorf("parsed `%s` wrong, got: %d, expected: %d", s, got, exp)
		}
	}
}

func TestParseTimestamp2(t *testing.T) {
	// the malformed ones
	testCases := []string{
		"",
		"hello",
		"2012/03/21",
		"2012-3-x1",
		"2012-03-99 11:45:16",
	}
	for _, s := range testCases {
		if _, err := ParseTimestamp(s); err == nil {
			t.Errorf("expected an error parsing `%s`", s)
		}
	}
}

// TestFormat1 checks that parse and format are exact inverses for the full
// date-and-time form.
func TestFormat1(t *testing.T) {
	s := "2012-03-21 11:45:16"
	stamp, err := ParseTimestamp(s)
	if err != nil {
		t.Errorf("could not parse `%s`: %v", s, err)
		return
	}
	if out := FormatTimestamp(stamp, false); out != s {
		t.Errorf("format round-trip failed, got: %s, expected: %s", out, s)
	}
	if out := FormatTimestamp(stamp, true); out != s+".000000" {
		t.Errorf("format with usec failed, got: %s", out)
	}
	if out := FormatDate(stamp); out != "2012-03-21" {
		t.Errorf("date format failed, got: %s", out)
	}
	if out := FormatTime(stamp, false); out != "11:45:16" {
		t.Errorf("time format failed, got: %s", out)
	}
	if out := FormatTime(stamp+123456, true); out != "11:45:16.123456" {
		t.Errorf("time format with usec failed, got: %s", out)
	}
}

func TestNow1(t *testing.T) {
	before := uint64(time.Now().UnixMicro())
	now := Now()
	after := uint64(time.Now().UnixMicro())
	if now < before || now > after {
		t.Errorf("now is out of range: %d", now)
	}
}
