package models

import (
	"encoding/json"
	"testing"
)

func TestOptFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		value float64
	}{
		{"number", `29.99`, true, 29.99},
		{"numeric string", `"29.99"`, true, 29.99},
		{"integer", `30`, true, 30},
		{"null", `null`, false, 0},
		{"empty string", `""`, false, 0},
		{"garbage", `"abc"`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f OptFloat
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if f.Valid != tt.valid || f.Value != tt.value {
				t.Errorf("unmarshal %s = {%v %v}, want {%v %v}", tt.input, f.Value, f.Valid, tt.value, tt.valid)
			}
		})
	}
}

func TestOptIntUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		value int
	}{
		{"number", `10`, true, 10},
		{"numeric string", `"10"`, true, 10},
		{"float truncated", `10.9`, true, 10},
		{"null", `null`, false, 0},
		{"garbage", `"ten"`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i OptInt
			if err := json.Unmarshal([]byte(tt.input), &i); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if i.Valid != tt.valid || i.Value != tt.value {
				t.Errorf("unmarshal %s = {%v %v}, want {%v %v}", tt.input, i.Value, i.Valid, tt.value, tt.valid)
			}
		})
	}
}

func TestOptNumericInsidePayload(t *testing.T) {
	// A garbage numeric must not fail decoding of the whole body.
	var in ProductInput
	body := `{"name":"Practice Shoes","price":"not a number","stock":10}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("payload with bad numeric should still decode: %v", err)
	}
	if in.Price.Valid {
		t.Error("unparsable price should be absent")
	}
	if !in.Stock.Valid || in.Stock.Value != 10 {
		t.Errorf("stock = {%v %v}, want {10 true}", in.Stock.Value, in.Stock.Valid)
	}
}

func TestStringListUnmarshal(t *testing.T) {
	var fromArray StringList
	if err := json.Unmarshal([]byte(`["Salsa","Tango"]`), &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}
	if len(fromArray) != 2 || fromArray[0] != "Salsa" || fromArray[1] != "Tango" {
		t.Errorf("array form = %v", fromArray)
	}

	var fromString StringList
	if err := json.Unmarshal([]byte(`"Salsa, Tango"`), &fromString); err != nil {
		t.Fatalf("comma form: %v", err)
	}
	if len(fromString) != 2 || fromString[0] != "Salsa" || fromString[1] != "Tango" {
		t.Errorf("comma form = %v", fromString)
	}

	var fromNull StringList
	if err := json.Unmarshal([]byte(`null`), &fromNull); err != nil {
		t.Fatalf("null form: %v", err)
	}
	if fromNull != nil {
		t.Errorf("null form = %v, want nil", fromNull)
	}
}
