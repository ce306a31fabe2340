package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{19, "Nineteen"},
		{40, "Forty"},
		{67, "Sixty Seven"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1250, "One Thousand Two Hundred Fifty"},
		{20000, "Twenty Thousand"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "100000"},
		{1680.0, "One Thousand Six Hundred Eighty"},
		{1680.75, "One Thousand Six Hundred Eighty"}, // integer part only
	}
	for _, tc := range cases {
		if got := NumberToWords(tc.in); got != tc.want {
			t.Errorf("NumberToWords(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitRoomList(t *testing.T) {
	got := SplitRoomList(" 301, 302 ;303,,301\n108 ")
	want := []int{301, 302, 303, 108}
	if len(got) != len(want) {
		t.Fatalf("SplitRoomList returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitRoomList returned %v, want %v", got, want)
		}
	}
	if s := JoinRoomList(got); s != "301, 302, 303, 108" {
		t.Fatalf("JoinRoomList returned %q", s)
	}
}
