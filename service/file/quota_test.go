package file

import (
	"docuchat-backend/config"
	"testing"
)

func TestEvaluateQuota(t *testing.T) {
	free := config.FreePlan()
	pro := config.ProPlan()

	tests := []struct {
		name          string
		pagesAmt      int
		sizeBytes     int64
		plan          config.Plan
		pagesExceeded bool
		sizeExceeded  bool
	}{
		{
			name:      "within free limits",
			pagesAmt:  5,
			sizeBytes: 4 * 1024 * 1024,
			plan:      free,
		},
		{
			name:          "free user 6 pages 2MB",
			pagesAmt:      6,
			sizeBytes:     2 * 1024 * 1024,
			plan:          free,
			pagesExceeded: true,
		},
		{
			name:         "free size one byte over",
			pagesAmt:     3,
			sizeBytes:    4*1024*1024 + 1,
			plan:         free,
			sizeExceeded: true,
		},
		{
			name:          "pro user 30 pages",
			pagesAmt:      30,
			sizeBytes:     1024,
			plan:          pro,
			pagesExceeded: true,
		},
		{
			name:      "pro limits are exact boundaries",
			pagesAmt:  25,
			sizeBytes: 16 * 1024 * 1024,
			plan:      pro,
		},
		{
			name:          "both limits exceeded",
			pagesAmt:      100,
			sizeBytes:     100 * 1024 * 1024,
			plan:          pro,
			pagesExceeded: true,
			sizeExceeded:  true,
		},
		{
			name:     "empty document",
			pagesAmt: 0,
			plan:     free,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluateQuota(tt.pagesAmt, tt.sizeBytes, tt.plan)
			if got.PagesExceeded != tt.pagesExceeded {
				t.Errorf("PagesExceeded = %v, want %v", got.PagesExceeded, tt.pagesExceeded)
			}
			if got.SizeExceeded != tt.sizeExceeded {
				t.Errorf("SizeExceeded = %v, want %v", got.SizeExceeded, tt.sizeExceeded)
			}
			if got.Exceeded() != (tt.pagesExceeded || tt.sizeExceeded) {
				t.Errorf("Exceeded() = %v, want %v", got.Exceeded(), tt.pagesExceeded || tt.sizeExceeded)
			}
		})
	}
}

// evaluateQuota是纯函数，重复求值结果一致
func TestEvaluateQuotaIdempotent(t *testing.T) {
	plan := config.ProPlan()
	first := evaluateQuota(30, 5*1024*1024, plan)
	for i := 0; i < 10; i++ {
		if got := evaluateQuota(30, 5*1024*1024, plan); got != first {
			t.Fatalf("evaluation %d differs: %+v != %+v", i, got, first)
		}
	}
}
