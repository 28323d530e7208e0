// Package message builds the small tagged payloads returned to API clients.
package message

const (
	TitleError   = "error"
	TitleMessage = "message"
)

// Payload is a single-key JSON object such as {"message": "..."}.
type Payload map[string]string

// Generic wraps text under the given key.
func Generic(title, text string) Payload {
	return Payload{title: text}
}

// Error builds {"error": text}.
func Error(text string) Payload {
	return Generic(TitleError, text)
}

// Message builds {"message": text}.
func Message(text string) Payload {
	return Generic(TitleMessage, text)
}

// Text returns the value stored under the payload's single key.
func (p Payload) Text() string {
	for _, v := range p {
		return v
	}
	return ""
}
