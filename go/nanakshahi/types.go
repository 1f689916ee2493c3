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

// Package nanakshahi converts dates between the Gregorian calendar and
// the Nanakshahi calendar, the solar calendar of the Sikh tradition.
// A Nanakshahi year has 12 fixed months (five of 31 days followed by
// seven of 30) and begins on March 14 of the Gregorian calendar.
package nanakshahi

import (
	"fmt"
	"time"
)

// Month is a Nanakshahi month, numbered 1 (Chet) through 12 (Phaggan).
// The numeric value is the ordinal used by ToGregorian.
type Month uint8

const (
	Chet Month = iota + 1
	Vaisakh
	Jeth
	Harh
	Sawan
	Bhadon
	Assu
	Kattak
	Maghar
	Poh
	Magh
	Phaggan
)

var monthNames = [12]string{
	"Chet", "Vaisakh", "Jeth", "Harh", "Sawan", "Bhadon",
	"Assu", "Kattak", "Maghar", "Poh", "Magh", "Phaggan",
}

// monthDays holds the common-year month lengths. The table always sums
// to 365; the extra day of a Gregorian leap year surfaces as a 31st day
// of Phaggan, see daysIn.
var monthDays = [12]uint8{31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 30, 30}

// String returns the month name, such as "Chet".
func (m Month) String() string {
	if m < Chet || m > Phaggan {
		return fmt.Sprintf("Month(%d)", uint8(m))
	}
	return monthNames[m-1]
}

// Days returns the common-year length of the month.
func (m Month) Days() int {
	return int(monthDays[m-1])
}

// daysIn returns the length of month m in Nanakshahi year y. Phaggan of
// year y runs through February of Gregorian year y+1469, so it carries
// the leap day when that Gregorian year is a leap year.
func daysIn(m Month, y uint16) int {
	if m == Phaggan && isGregorianLeap(int(y)+epochBeforeMidMarch) {
		return 31
	}
	return int(monthDays[m-1])
}

// Date is a Gregorian calendar date.
type Date struct {
	year  uint16
	month uint8
	day   uint8
}

// NewDate builds a Date, rejecting combinations that do not exist in
// the Gregorian calendar (such as February 30) with ErrInvalidDate.
func NewDate(year uint16, month, day uint8) (Date, error) {
	t := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != int(year) || m != time.Month(month) || d != int(day) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// NewDateFromStd converts a time.Time to a Date, dropping the clock.
func NewDateFromStd(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: uint16(y), month: uint8(m), day: uint8(d)}
}

func (d Date) Year() int {
	return int(d.year)
}

func (d Date) Month() int {
	return int(d.month)
}

func (d Date) Day() int {
	return int(d.day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// MonthName returns the English month name, such as "March".
func (d Date) MonthName() string {
	return time.Month(d.month).String()
}

// ToStdTime returns midnight of the date in the given location.
func (d Date) ToStdTime(loc *time.Location) time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day), 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or 1 ordering d against d2.
func (d Date) Compare(d2 Date) int {
	a := int(d.year)<<16 | int(d.month)<<8 | int(d.day)
	b := int(d2.year)<<16 | int(d2.month)<<8 | int(d2.day)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// NanakshahiDate is a date in the Nanakshahi calendar.
type NanakshahiDate struct {
	year  uint16
	month Month
	day   uint8
}

func (d NanakshahiDate) Year() int {
	return int(d.year)
}

func (d NanakshahiDate) Month() Month {
	return d.month
}

func (d NanakshahiDate) Day() int {
	return int(d.day)
}

func (d NanakshahiDate) IsZero() bool {
	return d == NanakshahiDate{}
}

// MonthName returns the month name, such as "Chet".
func (d NanakshahiDate) MonthName() string {
	return d.month.String()
}

// Compare returns -1, 0 or 1 ordering d against d2.
func (d NanakshahiDate) Compare(d2 NanakshahiDate) int {
	a := int(d.year)<<16 | int(d.month)<<8 | int(d.day)
	b := int(d2.year)<<16 | int(d2.month)<<8 | int(d2.day)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d NanakshahiDate) String() string {
	return fmt.Sprintf("%d %s %d", d.day, d.month, d.year)
}
