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

import "errors"

var (
	// ErrInvalidDate is returned when a year/month/day combination does
	// not exist in the Gregorian calendar, or when a date falls before
	// the start of the Nanakshahi era (14 March 1469 CE).
	ErrInvalidDate = errors.New("invalid Gregorian date")

	// ErrInvalidMonth is returned by ToGregorian for a Nanakshahi month
	// outside [1, 12].
	ErrInvalidMonth = errors.New("Nanakshahi month out of range")

	// ErrInvalidDay is returned by ToGregorian for a Nanakshahi day
	// outside the valid range of its month.
	ErrInvalidDay = errors.New("Nanakshahi day out of range")

	// ErrOffsetOverflow reports an internal invariant failure: the day
	// offset could not be placed in any Nanakshahi month. It signals a
	// defect in the offset arithmetic, never bad input.
	ErrOffsetOverflow = errors.New("day offset exceeds the Nanakshahi year")
)
