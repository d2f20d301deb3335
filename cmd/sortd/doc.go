// Command sortd is the CLI for the batch file-analysis engine: analyze a
// directory, list duplicate content, browse session history, manage
// configuration, or run the daemon in the foreground.
package main
