// Package inventory parses chip specs such as "100/$0.25" into chip rolls and
// provides the default chip case used when no chips are configured.
package inventory
