package tui

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgClearToast hides the toast with the given sequence number. Newer
// toasts are left alone.
type MsgClearToast struct {
	Seq int
}

func (MsgClearToast) sealed() {}
