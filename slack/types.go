package slack

// Message is a Slack incoming-webhook payload using Block Kit blocks.
// The Text field is the fallback shown in notifications.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}

type Block struct {
	Type   string `json:"type"`
	Text   *Text  `json:"text,omitempty"`
	Fields []Text `json:"fields,omitempty"`
}

type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func headerBlock(text string) Block {
	return Block{
		Type: "header",
		Text: &Text{Type: "plain_text", Text: text},
	}
}

func sectionBlock(markdown string) Block {
	return Block{
		Type: "section",
		Text: &Text{Type: "mrkdwn", Text: markdown},
	}
}

func fieldsBlock(fields ...Text) Block {
	return Block{
		Type:   "section",
		Fields: fields,
	}
}

func mrkdwn(text string) Text {
	return Text{Type: "mrkdwn", Text: text}
}
