// Package logger wraps zerolog with minutes-specific conveniences:
// a validated Config, console and JSON output formats, component-tagged
// child loggers, and a process-wide global logger with package-level
// helpers.
//
// Pipeline stages obtain a child logger via WithComponent so every line
// carries the stage that produced it:
//
//	log := logger.WithComponent("assembler")
//	log.Info("transcript assembled", map[string]interface{}{"paragraphs": n})
package logger
