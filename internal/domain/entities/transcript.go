package entities

import "strings"

const (
	SenderUser      = "USER"
	SenderAssistant = "BRENDAN"
	SenderSystem    = "SYSTEM_TRIGGER"
)

// TranscriptEntry is one line of the conversation.
type TranscriptEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Transcript is the append-only conversation log of a quote session.
type Transcript []TranscriptEntry

// Append returns a transcript with the entry added at the end. When the total
// text size exceeds maxChars the oldest entries are evicted first; the newest
// entry is always kept. maxChars <= 0 disables the cap.
func (t Transcript) Append(sender, text string, maxChars int) Transcript {
	text = strings.TrimSpace(text)
	if text == "" {
		return t
	}
	out := make(Transcript, 0, len(t)+1)
	out = append(out, t...)
	out = append(out, TranscriptEntry{Sender: strings.ToUpper(strings.TrimSpace(sender)), Text: text})
	if maxChars <= 0 {
		return out
	}

	size := 0
	for _, e := range out {
		size += e.size()
	}
	drop := 0
	for size > maxChars && drop < len(out)-1 {
		size -= out[drop].size()
		drop++
	}
	return out[drop:]
}

// Render formats the transcript as "SENDER: text" lines.
func (t Transcript) Render() string {
	var b strings.Builder
	for i, e := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Sender)
		b.WriteString(": ")
		b.WriteString(e.Text)
	}
	return b.String()
}

func (e TranscriptEntry) size() int {
	return len(e.Sender) + len(e.Text) + 3
}
