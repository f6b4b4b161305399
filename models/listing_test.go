package models

import (
	"reflect"
	"testing"
)

func TestEffectiveStatus(t *testing.T) {
	testCases := []struct {
		status string
		want   string
	}{
		{"", StatusApproved}, // legacy documents have no approvalStatus
		{StatusApproved, StatusApproved},
		{StatusPending, StatusPending},
		{StatusRejected, StatusRejected},
	}

	for _, tc := range testCases {
		l := Listing{ApprovalStatus: tc.status}
		if got := l.EffectiveStatus(); got != tc.want {
			t.Errorf("EffectiveStatus with %q = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestSanitizeFormFieldsTrims(t *testing.T) {
	out := SanitizeFormFields(map[string]interface{}{
		" height ": " 170cm ",
		"languages": []interface{}{" english ", "spanish"},
	})

	if out["height"] != "170cm" {
		t.Errorf("expected trimmed key and value, got %#v", out)
	}
	if !reflect.DeepEqual(out["languages"], []string{"english", "spanish"}) {
		t.Errorf("expected trimmed string list, got %#v", out["languages"])
	}
}

func TestSanitizeFormFieldsDropsSensitiveKeys(t *testing.T) {
	testCases := []string{"password", "Password", "passwordHash", "authToken", "api_secret"}

	for _, key := range testCases {
		t.Run(key, func(t *testing.T) {
			out := SanitizeFormFields(map[string]interface{}{
				key:    "leak",
				"eyes": "green",
			})
			if _, ok := out[key]; ok {
				t.Errorf("key %q should have been dropped", key)
			}
			if out["eyes"] != "green" {
				t.Error("harmless keys must survive")
			}
		})
	}
}

func TestSanitizeFormFieldsDropsNonStringValues(t *testing.T) {
	out := SanitizeFormFields(map[string]interface{}{
		"age":   42,
		"rates": map[string]interface{}{"hour": 100},
		"eyes":  "green",
	})

	if len(out) != 1 || out["eyes"] != "green" {
		t.Errorf("only string or string-list values should survive, got %#v", out)
	}
}

func TestSanitizeFormFieldsEmpty(t *testing.T) {
	if out := SanitizeFormFields(nil); out != nil {
		t.Errorf("expected nil for nil input, got %#v", out)
	}
	if out := SanitizeFormFields(map[string]interface{}{"password": "x"}); out != nil {
		t.Errorf("expected nil when everything is dropped, got %#v", out)
	}
}
