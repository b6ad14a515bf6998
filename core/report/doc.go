// Package report formats reconciliation output for the terminal.
//
// Display limits are explicit configuration handed to each call instead of
// process-wide state, so two callers with different verbosity never fight
// over globals. The renderers only build strings; printing is left to the
// caller.
package report
