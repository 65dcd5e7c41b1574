// Package session models one user's editing session over an office order.
//
// EditingSession is a reducer-style aggregate: the surface state machine
// (Loading, Editing, Previewing, ClosingPreview), the saved/dirty flags and
// the form content all change only through Apply(Event). The Event union in
// event.go enumerates everything that can happen to a session, so each
// transition is an ordinary table-driven unit test instead of UI behavior.
package session
