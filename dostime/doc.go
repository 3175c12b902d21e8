// Package dostime converts epoch seconds to calendar date-times and packs
// them into the legacy 32-bit MS-DOS timestamp that zip headers carry.
//
// The DOS format stores the year as an offset from 1980 and seconds at
// two-second resolution. Dates before 1980 are unrepresentable and pack to
// zero, which readers treat as "no timestamp"; this is a silent, lossy
// degradation rather than an error.
package dostime
