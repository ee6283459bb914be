package codec

import "testing"

func TestBoundedInt(t *testing.T) {
	cases := []struct {
		raw     string
		min     int64
		max     int64
		want    int64
		wantErr bool
	}{
		{"0", 0, 255, 0, false},
		{"255", 0, 255, 255, false},
		{"256", 0, 255, 0, true},
		{"-1", 0, 255, 0, true},
		{"not-a-number", 0, 255, 0, true},
		{"-5", -10, 10, -5, false},
	}
	for _, c := range cases {
		got, err := BoundedInt(c.raw, c.min, c.max)
		if c.wantErr {
			if err == nil {
				t.Errorf("BoundedInt(%q, %d, %d) = %d, want error", c.raw, c.min, c.max, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("BoundedInt(%q, %d, %d) unexpected error: %v", c.raw, c.min, c.max, err)
			continue
		}
		if got != c.want {
			t.Errorf("BoundedInt(%q, %d, %d) = %d, want %d", c.raw, c.min, c.max, got, c.want)
		}
	}
}
