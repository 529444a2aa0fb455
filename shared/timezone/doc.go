// Package timezone provides timezone utilities for the application.
//
// The park operates in a single local timezone; booking dates decoded from SKUs
// and operating-hours lookups all resolve against it.
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// automatically initialized when the package is imported. Use standard IANA
// timezone database names.
package timezone
