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

import "fmt"

// ToNanakshahi converts a Gregorian date to its Nanakshahi equivalent.
// Gregorian dates before 14 March 1469 CE predate the era and are
// rejected with ErrInvalidDate, as are impossible calendar dates.
func ToNanakshahi(year uint16, month, day uint8) (NanakshahiDate, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return NanakshahiDate{}, err
	}

	epoch := epochBeforeMidMarch
	if onOrAfterNewYear(month, day) {
		epoch = epochOnOrAfterMidMarch
	}
	if int(year) <= epoch {
		return NanakshahiDate{}, fmt.Errorf("%w: %v predates the Nanakshahi era", ErrInvalidDate, d)
	}
	nYear := year - uint16(epoch)

	offset := daysSinceNewYear(d)
	remaining := offset
	for m := Chet; m <= Phaggan; m++ {
		days := daysIn(m, nYear)
		if remaining < days {
			return NanakshahiDate{
				year:  nYear,
				month: m,
				day:   uint8(remaining + 1),
			}, nil
		}
		remaining -= days
	}
	return NanakshahiDate{}, fmt.Errorf("%w: offset %d for %v", ErrOffsetOverflow, offset, d)
}

// ToGregorian converts a Nanakshahi date, given by year, month ordinal
// (1 = Chet .. 12 = Phaggan) and day, to its Gregorian equivalent.
// Bounds are checked before any offset arithmetic so that out-of-range
// input never wraps into an adjacent month.
func ToGregorian(year uint16, month, day uint8) (Date, error) {
	// The Gregorian result year must still fit in a uint16.
	const maxYear = 1<<16 - 1 - epochBeforeMidMarch

	if year == 0 {
		return Date{}, fmt.Errorf("%w: year 0 predates the Nanakshahi era", ErrInvalidDate)
	}
	if year > maxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < uint8(Chet) || month > uint8(Phaggan) {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	m := Month(month)
	if day < 1 || int(day) > daysIn(m, year) {
		return Date{}, fmt.Errorf("%w: %d %s has no day %d", ErrInvalidDay, year, m, day)
	}

	offset := int(day) - 1
	for earlier := Chet; earlier < m; earlier++ {
		offset += daysIn(earlier, year)
	}
	return newYearPlusDays(int(year)+epochOnOrAfterMidMarch, offset), nil
}
