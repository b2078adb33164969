// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run that turns a birthdate file into a
// printed report, decoupled from any specific entrypoint like a CLI.
package app
