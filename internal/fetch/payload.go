package fetch

// Payload is the outcome of FetchText and FetchFile: either the decoded body
// or Empty. Callers treat Empty as "nothing to show".
type Payload struct {
	text string
	ok   bool
}

// Ok wraps a successfully fetched body.
func Ok(text string) Payload {
	return Payload{text: text, ok: true}
}

// Empty is the payload of a failed fetch.
func Empty() Payload {
	return Payload{}
}

// Empty reports whether the fetch failed.
func (p Payload) Empty() bool {
	return !p.ok
}

// String returns the body, or "" for an empty payload.
func (p Payload) String() string {
	return p.text
}
