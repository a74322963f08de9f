package command

import (
	"github.com/dshills/cmdpal/internal/input/key"
)

// Category groups related commands for display. The set is closed: an
// unknown category on a command is a configuration error, not a new value
// to be invented at runtime. Display order follows declaration order.
type Category uint8

const (
	// CategoryFile holds file operations (open, save, export).
	CategoryFile Category = iota

	// CategoryView holds view and layout commands.
	CategoryView

	// CategoryTheme holds appearance commands.
	CategoryTheme

	// CategorySession holds session lifecycle commands.
	CategorySession

	// CategoryTools holds auxiliary tool commands.
	CategoryTools

	// CategorySettings holds configuration commands.
	CategorySettings

	// CategoryHelp holds documentation commands.
	CategoryHelp

	categoryCount // sentinel, keep last
)

// String returns the category's display name.
func (c Category) String() string {
	switch c {
	case CategoryFile:
		return "file"
	case CategoryView:
		return "view"
	case CategoryTheme:
		return "theme"
	case CategorySession:
		return "session"
	case CategoryTools:
		return "tools"
	case CategorySettings:
		return "settings"
	case CategoryHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsValid returns true if the category is a member of the closed set.
func (c Category) IsValid() bool {
	return c < categoryCount
}

// ParseCategory returns the Category for a display name.
func ParseCategory(name string) (Category, bool) {
	for c := Category(0); c < categoryCount; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Categories returns all categories in display order.
func Categories() []Category {
	result := make([]Category, categoryCount)
	for i := range result {
		result[i] = Category(i)
	}
	return result
}

// Action is the zero-argument callback invoked when a command is
// dispatched. Its side effects are opaque to the palette core; any error
// is returned to the dispatching caller unmodified.
type Action func() error

// Predicate reports whether a command is currently available. It is
// evaluated against ambient application state at query and dispatch time.
type Predicate func() bool

// Command is the immutable descriptor for a single invocable action.
type Command struct {
	// ID is the unique command identifier (e.g. "file.save"). It is the
	// de-duplication key: re-registering an ID replaces the prior entry.
	ID string

	// Title is the display name shown in the palette and the primary
	// text scored by search.
	Title string

	// Category groups related commands for display and tie-breaking.
	Category Category

	// Keywords are auxiliary search terms, weighted below Title.
	Keywords []string

	// Shortcut is the optional key combination, stored canonically.
	Shortcut key.Chord

	// Available reports whether the command may currently be matched or
	// dispatched. Nil means always available.
	Available Predicate

	// Run executes the command.
	Run Action
}

// Validate checks that the command has its required fields and a known
// category.
func (c Command) Validate() error {
	if c.ID == "" {
		return &ValidationError{Reason: "missing id"}
	}
	if c.Title == "" {
		return &ValidationError{ID: c.ID, Reason: "missing title"}
	}
	if c.Run == nil {
		return &ValidationError{ID: c.ID, Reason: "missing run callback"}
	}
	if !c.Category.IsValid() {
		return &ValidationError{ID: c.ID, Reason: "unknown category"}
	}
	return nil
}

// IsAvailable evaluates the availability predicate, treating a nil
// predicate as always available.
func (c Command) IsAvailable() bool {
	return c.Available == nil || c.Available()
}
