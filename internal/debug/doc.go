// Package debug provides optional structured debug logging.
//
// When the POPOVER_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op unless a
// logger is installed with SetLogger.
package debug
