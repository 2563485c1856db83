package file

import "docuchat-backend/config"

type quotaCheck struct {
	PagesExceeded bool
	SizeExceeded  bool
}

func (q quotaCheck) Exceeded() bool {
	return q.PagesExceeded || q.SizeExceeded
}

// evaluateQuota 套餐配额判定，纯函数
// 页数上限按套餐的PagesPerPDF，体积上限按SizePerFileMB换算成字节
func evaluateQuota(pagesAmt int, sizeBytes int64, plan config.Plan) quotaCheck {
	return quotaCheck{
		PagesExceeded: pagesAmt > plan.PagesPerPDF,
		SizeExceeded:  sizeBytes > plan.SizePerFileMB*1024*1024,
	}
}
