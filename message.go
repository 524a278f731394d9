package websms

// Message describes a single outgoing SMS.
//
// The named optional fields cover the gateway options in common use; any
// further gateway-specific field can be forwarded through Extra without
// changes to this struct.
type Message struct {
	// Recipient is the destination number, optionally prefixed with "+".
	// A single leading "+" is stripped before transmission.
	Recipient string

	// Content is the message text.
	Content string

	// SenderAddress sets the originator shown to the recipient.
	SenderAddress string

	// SenderAddressType qualifies SenderAddress, e.g. "national",
	// "international", "alphanumeric" or "shortcode".
	SenderAddressType string

	// SendAsFlashSMS requests delivery as a flash message.
	SendAsFlashSMS bool

	// NotificationCallbackURL is called by the gateway with delivery
	// notifications for this message.
	NotificationCallbackURL string

	// ClientMessageID is a caller-chosen correlation ID echoed back in the
	// gateway's status record. Left empty it may be filled in by the
	// client when WithGeneratedClientMessageIDs is set.
	ClientMessageID string

	// Priority is the gateway-defined message priority; zero means unset.
	Priority int

	// Test asks the gateway to simulate the send without delivering.
	Test bool

	// Extra holds further gateway-specific fields, forwarded verbatim into
	// the JSON body under their own key names. On a key collision the
	// Extra value wins, including over messageContent and
	// recipientAddressList.
	Extra map[string]any
}

// optionalFields maps the set typed fields onto their gateway key names.
// Zero values are omitted from the payload.
func (m Message) optionalFields() map[string]any {
	f := make(map[string]any)
	if m.SenderAddress != "" {
		f["senderAddress"] = m.SenderAddress
	}
	if m.SenderAddressType != "" {
		f["senderAddressType"] = m.SenderAddressType
	}
	if m.SendAsFlashSMS {
		f["sendAsFlashSms"] = true
	}
	if m.NotificationCallbackURL != "" {
		f["notificationCallbackUrl"] = m.NotificationCallbackURL
	}
	if m.ClientMessageID != "" {
		f["clientMessageId"] = m.ClientMessageID
	}
	if m.Priority != 0 {
		f["priority"] = m.Priority
	}
	if m.Test {
		f["test"] = true
	}
	return f
}
