/*
Copyright 2025 The Nanakshahi Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package nanakshahi

import "time"

// The Nanakshahi era is counted from 14 March 1469 CE. A Gregorian year
// maps to year-1468 once the new year has passed and to year-1469 before
// it.
const (
	epochOnOrAfterMidMarch = 1468
	epochBeforeMidMarch    = 1469

	newYearMonth = time.March
	newYearDay   = 14
)

// onOrAfterNewYear reports whether the Gregorian (month, day) pair falls
// on or after March 14.
func onOrAfterNewYear(month, day uint8) bool {
	return month > uint8(newYearMonth) || (month == uint8(newYearMonth) && day >= newYearDay)
}

// daysSinceNewYear returns the number of whole days between d and the
// most recent Nanakshahi new year: March 14 of d's own Gregorian year
// if d is on or after it, March 14 of the previous year otherwise. The
// new year itself is offset 0. Subtracting midnight instants delegates
// leap-year handling to the Gregorian arithmetic in time.
func daysSinceNewYear(d Date) int {
	refYear := int(d.year)
	if !onOrAfterNewYear(d.month, d.day) {
		refYear--
	}
	ref := time.Date(refYear, newYearMonth, newYearDay, 0, 0, 0, 0, time.UTC)
	return int(d.ToStdTime(time.UTC).Sub(ref) / (24 * time.Hour))
}

// newYearPlusDays returns the Gregorian date offset days after March 14
// of the given year, crossing month and year boundaries as needed.
func newYearPlusDays(year, offset int) Date {
	t := time.Date(year, newYearMonth, newYearDay, 0, 0, 0, 0, time.UTC)
	return NewDateFromStd(t.AddDate(0, 0, offset))
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
