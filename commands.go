package gridview

// Command is a side effect requested by a primitive during input handling.
// Commands are executed by the Application event loop, which keeps primitives
// free of any reference to the screen or the application.
type Command any

// BatchCommand groups multiple commands into a single command.
type BatchCommand []Command

// AppendCommand appends next to current and returns a merged command value.
// Nested BatchCommand values are flattened.
func AppendCommand(current Command, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}

	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if nested, ok := c.(BatchCommand); ok {
			batch = append(batch, nested...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// SetFocusCommand moves keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// QuitCommand requests stopping the application event loop.
type QuitCommand struct{}

// SetTitleCommand requests updating the terminal title.
type SetTitleCommand string

// SetClipboardCommand places text on the system clipboard.
type SetClipboardCommand string

// ConsumeEventCommand stops further propagation of the current input event
// without requesting a redraw.
type ConsumeEventCommand struct{}
