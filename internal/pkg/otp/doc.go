// Package otp generates one-time codes for email verification flows.
//
// Codes are short random decimal strings meant to be delivered out of band
// and stored only as a hash. The package does not implement TOTP; codes here
// have no time component beyond the expiry the caller attaches.
package otp
