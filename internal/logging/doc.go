// Package logging builds the slog loggers used by every subspy command.
//
// Console output renders "time LEVEL component: message key=value" lines on
// stderr; the json format emits one object per line for tooling. Debug level
// adds source locations and the run_id attribute to console lines.
//
// WarnWithContext is the entry point for recoverable problems such as
// metadata conflicts: it guarantees event_type, error_hint and impact keys so
// every warning names its cause, consequence and next step.
package logging
