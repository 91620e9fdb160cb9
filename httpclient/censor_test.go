package httpclient

import (
	"reflect"
	"testing"
)

func TestCensorReplacesSecretKeys(t *testing.T) {
	payload := map[string]any{"password": "x", "other": "y"}
	got := Censor([]string{"password"}, payload)

	want := map[string]any{"password": CensoredMessage, "other": "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Censor = %v, want %v", got, want)
	}
	if payload["password"] != "x" {
		t.Error("original payload must not be modified")
	}
}

func TestCensorHeaders(t *testing.T) {
	headers := map[string]string{
		"Authorization": "Token secret",
		"X-Auth-Token":  "also secret",
		"User-Agent":    "vsc-rest-client",
	}
	got := Censor(headerSecrets, headers)

	if got["Authorization"] != CensoredMessage {
		t.Errorf("Authorization = %v, want censored", got["Authorization"])
	}
	if got["X-Auth-Token"] != CensoredMessage {
		t.Errorf("X-Auth-Token = %v, want censored", got["X-Auth-Token"])
	}
	if got["User-Agent"] != "vsc-rest-client" {
		t.Errorf("User-Agent = %v, want untouched", got["User-Agent"])
	}
}

func TestCensorMissingSecretKeys(t *testing.T) {
	got := Censor([]string{"password"}, map[string]any{"title": "t"})
	if got["title"] != "t" || len(got) != 1 {
		t.Errorf("Censor = %v, want unchanged copy", got)
	}
}

func TestCensorValueNonMapPayloadUnchanged(t *testing.T) {
	// Payloads that cannot be walked are passed through without error.
	for _, payload := range []any{[]string{"a", "b"}, "plain string", 42, nil} {
		if got := censorValue(bodySecrets, payload); !reflect.DeepEqual(got, payload) {
			t.Errorf("censorValue(%v) = %v, want unchanged", payload, got)
		}
	}
}

func TestCensorValueStringMap(t *testing.T) {
	got := censorValue(bodySecrets, map[string]string{"password": "x", "user": "u"})
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", got)
	}
	if m["password"] != CensoredMessage || m["user"] != "u" {
		t.Errorf("censorValue = %v", m)
	}
}
