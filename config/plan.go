package config

// Plan 订阅套餐配额，静态配置，运行时不可变
type Plan struct {
	Name string
	Slug string

	// 最大文件数量
	Quota int

	// 单个PDF的最大页数
	PagesPerPDF int

	// 单个文件的最大体积（MB）
	SizePerFileMB int64
}

const (
	PlanNameFree = "Free"
	PlanNamePro  = "Pro"
)

// Plans 仅有Free和Pro两档
var Plans = []Plan{
	{
		Name:          PlanNameFree,
		Slug:          "free",
		Quota:         10,
		PagesPerPDF:   5,
		SizePerFileMB: 4,
	},
	{
		Name:          PlanNamePro,
		Slug:          "pro",
		Quota:         50,
		PagesPerPDF:   25,
		SizePerFileMB: 16,
	},
}

func PlanByName(name string) Plan {
	for _, p := range Plans {
		if p.Name == name {
			return p
		}
	}
	return Plans[0]
}

func FreePlan() Plan {
	return PlanByName(PlanNameFree)
}

func ProPlan() Plan {
	return PlanByName(PlanNamePro)
}
