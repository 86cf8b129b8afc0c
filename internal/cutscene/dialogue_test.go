package cutscene

import "testing"

func TestDialogueBox(t *testing.T) {
	b := NewDialogueBox()
	if !b.Dismissed() || b.IsOpen() {
		t.Fatalf("new box should start closed")
	}
	if b.Dismiss() {
		t.Errorf("Dismiss() on a closed box = true, want false")
	}

	b.Open(Message{Text: "first", Speaker: "npcA"})
	msg, open := b.Current()
	if !open || msg.Text != "first" || msg.Speaker != "npcA" {
		t.Errorf("Current() = %+v, %v, want first from npcA", msg, open)
	}
	if b.Dismissed() {
		t.Errorf("Dismissed() = true while a message is open")
	}

	b.Open(Message{Text: "second"})
	if msg, _ := b.Current(); msg.Text != "second" {
		t.Errorf("Current().Text = %q, want second", msg.Text)
	}
	if !b.Dismiss() || !b.Dismissed() {
		t.Errorf("Dismiss() should close the open message")
	}
	if got := b.Shown(); got != 2 {
		t.Errorf("Shown() = %d, want 2", got)
	}
}
