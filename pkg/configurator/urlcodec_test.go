package configurator

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := Session{
		Selections:   map[string]string{"fenstertyp": "normal"},
		Measurements: map[string]int{FieldWidth: 500, FieldHeight: 600},
		Quantity:     2,
	}

	decoded := DecodeState(EncodeState(s))

	if !reflect.DeepEqual(decoded.Selections, s.Selections) {
		t.Errorf("Selections = %v, want %v", decoded.Selections, s.Selections)
	}
	if !reflect.DeepEqual(decoded.Measurements, s.Measurements) {
		t.Errorf("Measurements = %v, want %v", decoded.Measurements, s.Measurements)
	}
	if decoded.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", decoded.Quantity)
	}
}

func TestQuantityOneIsOmitted(t *testing.T) {
	s := Session{
		Selections:   map[string]string{"fenstertyp": "normal"},
		Measurements: map[string]int{},
		Quantity:     1,
	}

	encoded := EncodeState(s)
	if encoded != "sel_fenstertyp=normal" {
		t.Errorf("encoded = %q, want qty omitted", encoded)
	}

	decoded := DecodeState(encoded)
	if decoded.Quantity != 1 {
		t.Errorf("Quantity = %d, want default 1", decoded.Quantity)
	}
}

func TestDecodeFailSoft(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, s Session)
	}{
		{
			name:  "malformed measurement treated as absent",
			query: "m_breite=abc&m_hoehe=600",
			check: func(t *testing.T, s Session) {
				if _, ok := s.Measurements[FieldWidth]; ok {
					t.Error("malformed breite should be absent")
				}
				if s.Measurements[FieldHeight] != 600 {
					t.Errorf("hoehe = %d, want 600", s.Measurements[FieldHeight])
				}
			},
		},
		{
			name:  "malformed quantity falls back to 1",
			query: "qty=zwei",
			check: func(t *testing.T, s Session) {
				if s.Quantity != 1 {
					t.Errorf("Quantity = %d, want 1", s.Quantity)
				}
			},
		},
		{
			name:  "unknown keys ignored",
			query: "utm_source=newsletter&sel_fenstertyp=normal&foo=bar",
			check: func(t *testing.T, s Session) {
				if len(s.Selections) != 1 || s.Selections["fenstertyp"] != "normal" {
					t.Errorf("Selections = %v", s.Selections)
				}
			},
		},
		{
			name:  "garbage query yields empty state",
			query: "%%%zzz;;;",
			check: func(t *testing.T, s Session) {
				if len(s.Selections) != 0 || len(s.Measurements) != 0 || s.Quantity != 1 {
					t.Errorf("state not empty: %+v", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, DecodeState(tt.query))
		})
	}
}

func TestPassthroughWhitelistPreserved(t *testing.T) {
	decoded := DecodeState("?sel_fenstertyp=normal&product=kellerfenster-basic&color=weiss&utm_source=x")

	if decoded.Extra["product"] != "kellerfenster-basic" {
		t.Errorf("Extra = %v, product missing", decoded.Extra)
	}
	if decoded.Extra["color"] != "weiss" {
		t.Errorf("Extra = %v, color missing", decoded.Extra)
	}
	if _, ok := decoded.Extra["utm_source"]; ok {
		t.Error("utm_source is not on the whitelist")
	}

	again := DecodeState(EncodeState(decoded))
	if !reflect.DeepEqual(again.Extra, decoded.Extra) {
		t.Errorf("passthrough lost in round-trip: %v vs %v", again.Extra, decoded.Extra)
	}
}
