// Package cli is responsible for parsing command-line arguments and
// handling process-level concerns like exit codes. It translates the
// tool's flags, including grouped short flags such as "-adl", into the
// application's internal configuration.
package cli
