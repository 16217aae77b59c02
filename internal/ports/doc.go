// Package ports defines the interfaces (ports) that connect the lifecycle
// core to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// core needs from external systems without specifying how those needs are
// fulfilled.
//
// # Port Interfaces
//
//   - [WindowSet]: Queries and commands the window tracker
//   - [WindowEvents]: Receives window tracker notifications
//   - [ProcessHost]: Registers exit codes with the host event loop
//   - [Logger]: Structured logging abstraction
//
// The lifecycle core (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (in-process window registry, zerolog, etc.).
package ports
