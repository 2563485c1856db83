package vectorindex

import "testing"

func TestPartitionName(t *testing.T) {
	tests := []struct {
		fileID string
		want   string
	}{
		{"6f1c8b2e-0d4a-4f3b-9c7d-1a2b3c4d5e6f", "ns_6f1c8b2e_0d4a_4f3b_9c7d_1a2b3c4d5e6f"},
		{"plain", "ns_plain"},
	}

	for _, tt := range tests {
		if got := PartitionName(tt.fileID); got != tt.want {
			t.Errorf("PartitionName(%q) = %q, want %q", tt.fileID, got, tt.want)
		}
	}
}
