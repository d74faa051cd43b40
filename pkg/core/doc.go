// Package core holds the shared value types used across i18nlint:
// diagnostic severities and rule metadata DTOs. It has no dependencies so
// every other package can import it without cycles.
package core
