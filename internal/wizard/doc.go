// Package wizard implements the interactive prompt sequence behind
// predator-rgb --interactive.
//
// The Prompter is an explicit state machine:
//
//	mode → zones → [speed → brightness → direction] → color → dry-run → confirm
//
// The bracketed steps are skipped for static mode. An unparseable answer is
// reported and the same question is asked again. Declining the final
// confirmation restarts at mode with the previous answers as defaults.
//
// Answers are read through a LineReader: a Bubble Tea text input on a
// terminal, or a bufio reader for pipes and tests.
package wizard
