package wire

import (
	"reflect"
	"testing"
)

func TestNormalizeRecipient(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"+431234", "431234"},
		{"431234", "431234"},
		{"++431234", "+431234"}, // only a single leading plus is stripped
		{"+", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeRecipient(c.in); got != c.want {
			t.Errorf("NormalizeRecipient(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildPayload_RequiredFields(t *testing.T) {
	p := BuildPayload("+431234", "Hello", nil, nil)

	if got := p[KeyMessageContent]; got != "Hello" {
		t.Errorf("messageContent = %v, want Hello", got)
	}
	want := []string{"431234"}
	if got := p[KeyRecipientAddressList]; !reflect.DeepEqual(got, want) {
		t.Errorf("recipientAddressList = %v, want %v", got, want)
	}
	if len(p) != 2 {
		t.Errorf("payload has %d keys, want 2: %v", len(p), p)
	}
}

func TestBuildPayload_MergeOrder(t *testing.T) {
	optional := map[string]any{
		"senderAddress": "INFO",
		"test":          true,
	}
	extra := map[string]any{
		"messageContent":   "overridden",
		"senderAddress":    "EXTRA",
		"maxSmsPerMessage": 3,
	}

	p := BuildPayload("431234", "Hello", optional, extra)

	// Extra fields win over both the required and the typed optional fields.
	if got := p["messageContent"]; got != "overridden" {
		t.Errorf("messageContent = %v, want overridden", got)
	}
	if got := p["senderAddress"]; got != "EXTRA" {
		t.Errorf("senderAddress = %v, want EXTRA", got)
	}
	if got := p["test"]; got != true {
		t.Errorf("test = %v, want true", got)
	}
	if got := p["maxSmsPerMessage"]; got != 3 {
		t.Errorf("maxSmsPerMessage = %v, want 3", got)
	}
}
