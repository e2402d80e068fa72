package metrics

// Summary is the full metrics view of one project.
type Summary struct {
	ProjectID        int64   `json:"project_id"`
	ProjectName      string  `json:"project_name"`
	StartDate        string  `json:"start_date,omitempty"`
	EndDate          string  `json:"end_date,omitempty"`
	EstimatedHours   int     `json:"estimated_hours"`
	RegisteredHours  int     `json:"registered_hours"`
	RemainingHours   int     `json:"remaining_hours"`
	WorkingDays      int     `json:"working_days"`
	RequiredPerDay   float64 `json:"required_per_day"`
	ProgressPercent  float64 `json:"progress_percent"`
	Budget           float64 `json:"budget"`
	HourlyRate       float64 `json:"hourly_rate"`
	EstimatedCost    float64 `json:"estimated_cost"`
	ActualCost       float64 `json:"actual_cost"`
	ProfitMargin     float64 `json:"profit_margin"`
	OverBudget       bool    `json:"over_budget"`
	Currency         string  `json:"currency,omitempty"`
	UnestimatedTasks int     `json:"unestimated_tasks"`
	TaskCount        int     `json:"task_count"`
}

// Inputs are the raw figures a Summary is derived from.
type Inputs struct {
	EstimatedHours   int
	RegisteredHours  int
	WorkingDays      int
	Budget           float64
	HourlyRate       float64
	TaskCount        int
	UnestimatedTasks int
}

// NewSummary derives hours, pace, progress and cost figures from in.
func NewSummary(in Inputs) Summary {
	remaining := Remaining(in.EstimatedHours, in.RegisteredHours)
	estCost := float64(in.EstimatedHours) * in.HourlyRate
	actualCost := float64(in.RegisteredHours) * in.HourlyRate

	s := Summary{
		EstimatedHours:   in.EstimatedHours,
		RegisteredHours:  in.RegisteredHours,
		RemainingHours:   remaining,
		WorkingDays:      in.WorkingDays,
		RequiredPerDay:   PerWorkday(remaining, in.WorkingDays),
		ProgressPercent:  Progress(in.EstimatedHours, in.RegisteredHours),
		Budget:           in.Budget,
		HourlyRate:       in.HourlyRate,
		EstimatedCost:    estCost,
		ActualCost:       actualCost,
		OverBudget:       in.Budget > 0 && actualCost > in.Budget,
		TaskCount:        in.TaskCount,
		UnestimatedTasks: in.UnestimatedTasks,
	}
	if estCost > 0 {
		s.ProfitMargin = (in.Budget - estCost) / estCost * 100
	}
	return s
}
