// Package hrtime formats high-resolution elapsed time for humans.
//
// An elapsed time is a pair of whole seconds and the remaining nanoseconds,
// the same split a monotonic clock reports. The unit and precision depend on
// magnitude:
//
//	Format(Elapsed{Seconds: 65})                      // "1m 5s"
//	Format(Elapsed{Seconds: 1, Nanoseconds: 234e6})   // "1.234s"
//	Format(Elapsed{Nanoseconds: 150e6})               // "150ms"
//	Format(Elapsed{Nanoseconds: 552133})              // "0.552ms"
//
// Every fractional value is truncated toward zero, never rounded, and
// trailing zeros after the decimal point are dropped.
package hrtime
