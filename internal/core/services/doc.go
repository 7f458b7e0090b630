// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never import adapters: the engine, classifier, stores and
// sources all arrive through driven ports.
package services
