// Package component defines the contract every UI unit satisfies and the
// glue that composes units into one Bubble Tea program.
//
// A component is a state machine over its own closed message set M:
//   - Update consumes one M, mutates the component in place and returns a
//     task (tea.Cmd) that yields future messages;
//   - View projects the current state to text and never mutates it.
//
// Parents wrap child messages in their own message types and retag child
// tasks with MapCmd, so the message tree mirrors the component tree and a
// child never observes a sibling's message.
package component
