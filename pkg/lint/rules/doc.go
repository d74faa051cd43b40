// Package rules provides the lint rule implementations for i18nlint.
//
// Rules are registered with the global lint registry from init() functions.
// To make all rules available, import this package with a blank identifier:
//
//	import _ "github.com/leapstack-labs/i18nlint/pkg/lint/rules"
package rules
