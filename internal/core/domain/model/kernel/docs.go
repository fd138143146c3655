// Package kernel contains shared value objects used by every domain model:
// the UUID identifier wrapper and the GeoPoint pickup coordinate. These types
// are immutable, validated on construction, and safe for concurrent use.
package kernel
