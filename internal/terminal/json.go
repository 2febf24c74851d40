package terminal

const (
	logFieldDoc = "doc"
)

var (
	docMessageFields = []string{logFieldMessage, logFieldDoc}
)

// docMessage pairs a text message with the structured document it summarizes.
// Text output prints only the message; json output carries the full document.
type docMessage struct {
	textMessage
	doc interface{}
}

func (d docMessage) Payload() ([]string, map[string]interface{}, error) {
	return docMessageFields, map[string]interface{}{
		logFieldMessage: string(d.textMessage),
		logFieldDoc:     d.doc,
	}, nil
}
