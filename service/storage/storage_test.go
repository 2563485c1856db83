package storage

import (
	"docuchat-backend/config"
	"testing"
)

func TestTaggingHeader(t *testing.T) {
	tests := []struct {
		name       string
		operations []string
		want       string
	}{
		{
			name: "no operations",
			want: "",
		},
		{
			name:       "single operation",
			operations: []string{"white-dots"},
			want:       "white-dots=1",
		},
		{
			name:       "multiple operations",
			operations: []string{"white-dots", "round-edge"},
			want:       "white-dots=1&round-edge=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaggingHeader(tt.operations); got != tt.want {
				t.Errorf("TaggingHeader(%v) = %q, want %q", tt.operations, got, tt.want)
			}
		})
	}
}

func TestObjectURL(t *testing.T) {
	prev := config.Cfg
	t.Cleanup(func() { config.Cfg = prev })
	config.Cfg = &config.Config{
		OSS: config.OSSConfig{
			Region:     "cn-hangzhou",
			BucketName: "docuchat",
		},
	}

	want := "https://docuchat.oss-cn-hangzhou.aliyuncs.com/user-1/report.pdf"
	if got := ObjectURL("user-1/report.pdf"); got != want {
		t.Errorf("ObjectURL() = %q, want %q", got, want)
	}
}
