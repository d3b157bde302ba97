package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zbalkan/fc/pkg/fc"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	five := 5
	forty := 40

	tests := []struct {
		name    string
		args    []string
		want    ParsedArgs
		wantErr bool
	}{
		{
			name: "two paths no switches",
			args: []string{"a.txt", "b.txt"},
			want: ParsedArgs{Paths: []string{"a.txt", "b.txt"}},
		},
		{
			name: "binary switch lowercase prefix",
			args: []string{"-b", "a.bin", "b.bin"},
			want: ParsedArgs{Paths: []string{"a.bin", "b.bin"}, Mode: fc.Binary, ModeSet: true},
		},
		{
			name: "case insensitive and multiple flags",
			args: []string{"/c", "/W", "a", "b"},
			want: ParsedArgs{Paths: []string{"a", "b"}, IgnoreCase: true, IgnoreWhitespace: true},
		},
		{
			name: "resync switch",
			args: []string{"/5", "a", "b"},
			want: ParsedArgs{Paths: []string{"a", "b"}, ResyncLines: &five},
		},
		{
			name: "buffer lines switch",
			args: []string{"/LB40", "a", "b"},
			want: ParsedArgs{Paths: []string{"a", "b"}, BufferLines: &forty},
		},
		{
			name: "config path preserves case",
			args: []string{"/CONFIG:/tmp/MyConfig.json", "a", "b"},
			want: ParsedArgs{Paths: []string{"a", "b"}, ConfigPath: "/tmp/MyConfig.json"},
		},
		{
			name: "interactive with no paths",
			args: []string{"/I"},
			want: ParsedArgs{Interactive: true},
		},
		{
			name:    "unknown switch",
			args:    []string{"/Z", "a", "b"},
			wantErr: true,
		},
		{
			name:    "wrong number of paths",
			args:    []string{"a"},
			wantErr: true,
		},
		{
			name:    "resync below one",
			args:    []string{"/0", "a", "b"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseArgs(tc.args)

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}

				if !IsUsageError(err) {
					t.Errorf("expected a usage error, got %T", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseArgs: %v", err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
