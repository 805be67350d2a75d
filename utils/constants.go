// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// BookingSessionPrefix is the prefix used for Redis booking wizard session keys.
const BookingSessionPrefix = "bookingSession:"

// BookingSessionTTL bounds how long an abandoned wizard survives.
const BookingSessionTTL = 30 * time.Minute

// AuthTokenTTL is the lifetime of issued JWT tokens.
const AuthTokenTTL = 72 * time.Hour
