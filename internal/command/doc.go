// Package command implements the command palette core: the registry of
// invocable commands, free-text search, and keyboard shortcut resolution.
//
// # Architecture
//
//   - Command: immutable descriptor for one invocable action
//   - Registry: authoritative store keyed by unique ID, registration order
//     preserved
//   - Search: availability-filtered, tiered scoring (title substring over
//     keyword substring over fuzzy subsequence)
//   - Resolve/Dispatch: canonical shortcut lookup with last-registration-wins
//     collision handling, invocation as a separate explicit step
//   - History: optional recency record maintained by the host
//
// # Usage
//
//	reg := command.NewRegistry()
//
//	err := reg.Register(command.Command{
//	    ID:       "file.save",
//	    Title:    "Save File",
//	    Category: command.CategoryFile,
//	    Shortcut: key.MustParse("Ctrl+S"),
//	    Run:      func() error { return saveFile() },
//	})
//
//	results := reg.Search("save")
//
//	if cmd, ok := reg.Resolve(key.MustParse("ctrl+s")); ok {
//	    err = reg.Dispatch(cmd.ID)
//	}
//
// # Thread safety
//
// All Registry operations are safe for concurrent use. Mutations
// (Register, RegisterAll, Unregister) are serialized; Search, Resolve,
// Get and All are read operations that may run concurrently with each
// other.
package command
