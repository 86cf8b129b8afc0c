package cutscene

// Message is a line of dialogue handed to the display.
type Message struct {
	Text    string
	Speaker string // entity id that turned to face the hero, if any
}

// Dialogue is the dialogue-display collaborator. The interpreter opens a
// message and then polls Dismissed once per tick until the player closes it.
type Dialogue interface {
	Open(msg Message)
	Dismissed() bool
}

// DialogueBox is the default Dialogue: a single message slot that input
// handling dismisses and the renderer reads.
type DialogueBox struct {
	current Message
	open    bool
	shown   int
}

// NewDialogueBox returns a closed dialogue box.
func NewDialogueBox() *DialogueBox {
	return &DialogueBox{}
}

// Open shows msg, replacing whatever was displayed.
func (b *DialogueBox) Open(msg Message) {
	b.current = msg
	b.open = true
	b.shown++
}

// Dismiss closes the open message. It returns false if nothing was open.
func (b *DialogueBox) Dismiss() bool {
	if !b.open {
		return false
	}
	b.open = false
	return true
}

// Dismissed reports whether no message is currently waiting on the player.
func (b *DialogueBox) Dismissed() bool {
	return !b.open
}

// IsOpen reports whether a message is being displayed.
func (b *DialogueBox) IsOpen() bool {
	return b.open
}

// Current returns the displayed message, if any.
func (b *DialogueBox) Current() (Message, bool) {
	return b.current, b.open
}

// Shown returns how many messages have been opened over the box's lifetime.
func (b *DialogueBox) Shown() int {
	return b.shown
}
