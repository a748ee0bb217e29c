// Package timezone resolves "today" and "this month" in the hotel's local
// timezone, configured via APP_TIMEZONE (an IANA name such as
// "Asia/Jerusalem"). Stored timestamps stay in UTC; use NowUTC for those.
//
//	month := timezone.CurrentMonthKey() // "2026-10"
//	day := timezone.Today()             // "2026-10-19"
package timezone
