package structs

type FeedPostPayload struct {
	Content    string `json:"content" form:"content"`
	ImageURL   string `json:"image_url" form:"image_url"`
	Visibility string `json:"visibility" form:"visibility"`
}

type CommentPayload struct {
	Content string `json:"content" form:"content"`
}

type ChallengeProgressPayload struct {
	Progress int `json:"progress" form:"progress"`
}
