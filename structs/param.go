package structs

// ScrapeQueueParam is the body of a food-scrape queue message.
type ScrapeQueueParam struct {
	Query     string `json:"query" form:"query"`
	Limit     int    `json:"limit" form:"limit"`
	TaskID    uint   `json:"task_id" form:"task_id"`
	QueueType string `json:"queue_type" form:"queue_type"`
}
