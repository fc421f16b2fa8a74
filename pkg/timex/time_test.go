package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_JSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 30, 45, 0, time.Local)
	tt := Time(now)

	data, err := json.Marshal(tt)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-05-20 12:30:45"` {
		t.Errorf("Marshal = %s, want %q", data, "2024-05-20 12:30:45")
	}

	var parsed Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if parsed.Unix() != tt.Unix() {
		t.Errorf("round trip Unix() = %v, want %v", parsed.Unix(), tt.Unix())
	}
}

func TestTime_ZeroMarshalsAsNull(t *testing.T) {
	var zero Time
	data, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("zero time Marshal = %s, want null", data)
	}
}

func TestTime_Scan(t *testing.T) {
	var tt Time
	if err := tt.Scan("2024-05-20 12:30:45"); err != nil {
		t.Fatalf("Scan string failed: %v", err)
	}
	if tt.String() != "2024-05-20 12:30:45" {
		t.Errorf("Scan string = %v", tt.String())
	}

	now := time.Now()
	if err := tt.Scan(now); err != nil {
		t.Fatalf("Scan time.Time failed: %v", err)
	}
	if tt.Unix() != now.Unix() {
		t.Errorf("Scan time.Time Unix = %v, want %v", tt.Unix(), now.Unix())
	}

	if err := tt.Scan(12345); err == nil {
		t.Error("Scan int should fail, got nil")
	}
}
