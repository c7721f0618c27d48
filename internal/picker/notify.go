package picker

import "errors"

// Level is the severity of a Notification.
type Level int

// Notification levels.
const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Notification is a non-blocking message for the user.
type Notification struct {
	Err     error
	Message string
	Level   Level
}

// crossSourceMessage is shown when marks exist outside the cursor's source.
const crossSourceMessage = "batch actions across sources are not supported"

func notificationFor(err error) Notification {
	level := LevelError
	var buildErr *SourceBuildError
	if errors.As(err, &buildErr) {
		level = LevelWarning
	}
	return Notification{Level: level, Message: err.Error(), Err: err}
}
