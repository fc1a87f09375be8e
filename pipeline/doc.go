// SPDX-License-Identifier: MIT

// Package pipeline sequences one ljbind run:
//
//	load distances → validate pairing count → aggregate → self-check
//
// A load or geometry failure stops the run before any total is printed and is
// returned as an error; the caller decides how to exit. The self-check only
// sets Outcome.Trusted and never fails the run.
package pipeline
