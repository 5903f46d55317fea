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
	"fmt"
	"strconv"
	"strings"
	"time"
)

// usecPerSec gets us from seconds to microseconds, which is the resolution
// every timestamp in the system carries.
const usecPerSec = 1000000

// Now returns the current time as microseconds since the Unix epoch.
func Now() uint64 {
	return uint64(time.Now().UnixMicro())
}

// ParseTimestamp converts the string representation of a timestamp into
// unsigned microseconds since the Unix epoch. Three forms are accepted:
//
//	2012-03-21 11:45:16[.ffffff]  a date and a local time
//	2012-03-21                    a date, taken at local midnight
//	11:45:16[.ffffff]             a bare time, as microseconds from midnight
//
// The bare time form is not referenced to any date. The date forms use the
// local timezone, which makes this the exact inverse of FormatTimestamp.
func ParseTimestamp(s string) (uint64, error) {
	var stamp uint64
	gotDate := strings.Contains(s, "-") && len(s) >= 10
	gotTime := strings.Contains(s, ":") && len(s) >= 8
	switch {
	case gotDate && gotTime:
		if len(s) < 19 {
			return 0, fmt.Errorf("could not parse timestamp `%s`: too short", s)
		}
		when, err := time.ParseInLocation("2006-01-02 15:04:05", s[0:19], time.Local)
		if err != nil {
			return 0, fmt.Errorf("could not parse timestamp `%s`: %v", s, err)
		}
		stamp = uint64(when.Unix()) * usecPerSec

	case gotDate:
		when, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return 0, fmt.Errorf("could not parse date `%s`: %v", s, err)
		}
		stamp = uint64(when.Unix()) * usecPerSec

	case gotTime:
		base := s
		if i := strings.IndexByte(base, '.'); i >= 0 {
			base = base[0:i]
		}
		when, err := time.Parse("15:04:05", base)
		if err != nil {
			return 0, fmt.Errorf("could not parse time `%s`: %v", s, err)
		}
		hrs, mins, secs := when.Clock()
		stamp = uint64(((hrs*60+mins)*60)+secs) * usecPerSec

	default:
		return 0, fmt.Errorf("unrecognized timestamp form: `%s`", s)
	}

	// now look for any fractional seconds on the time
	if pos := strings.LastIndexByte(s, '.'); pos >= 0 && pos < len(s)-1 {
		frac := s[pos+1:] + "0000000" // pad out to usec precision
		usec, err := strconv.ParseUint(frac[0:6], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse fractional seconds of `%s`: %v", s, err)
		}
		stamp += usec
	}
	return stamp, nil
}

// FormatTimestamp takes a timestamp as microseconds since the Unix epoch and
// formats it into a human-readable local timestamp: `2012-02-12 11:34:15` or
// `2012-02-12 11:34:15.032451` if you ask for the microseconds as well.
func FormatTimestamp(stamp uint64, inclUSec bool) string {
	secs := stamp / usecPerSec
	usec := stamp - secs*usecPerSec
	when := time.Unix(int64(secs), 0).Local()
	if inclUSec {
		return fmt.Sprintf("%s.%06d", when.Format("2006-01-02 15:04:05"), usec)
	}
	return when.Format("2006-01-02 15:04:05")
}

// FormatDate takes a timestamp as microseconds since the Unix epoch and
// formats the date part of it: `2012-02-12`. The time component is ignored.
func FormatDate(stamp uint64) string {
	when := time.Unix(int64(stamp/usecPerSec), 0).Local()
	return when.Format("2006-01-02")
}

// FormatTime takes a timestamp as microseconds since the Unix epoch and
// formats the time part of it: `11:34:15` or `11:34:15.342567` if you ask for
// the microseconds as well.
func FormatTime(stamp uint64, inclUSec bool) string {
	secs := stamp / usecPerSec
	usec := stamp - secs*usecPerSec
	when := time.Unix(int64(secs), 0).Local()
	if inclUSec {
		return fmt.Sprintf("%s.%06d", when.Format("15:04:05"), usec)
	}
	return when.Format("15:04:05")
}
