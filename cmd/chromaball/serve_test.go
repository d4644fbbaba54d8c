package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2222", "ssh localhost -p 2222"},
		{"[::]:2222", "ssh localhost -p 2222"},
		{"arcade.example.com:4000", "ssh arcade.example.com -p 4000"},
		{"10.0.0.5:22", "ssh 10.0.0.5"},
	}

	for _, tt := range tests {
		if got := connectHint(tt.addr); got != tt.want {
			t.Errorf("connectHint(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
