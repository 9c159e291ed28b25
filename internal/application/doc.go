// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the chip inventory, dealer and formatter,
// and runs the distribution use case, keeping the main package focused on
// CLI parsing and orchestration.
package application
