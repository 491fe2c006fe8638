package response_models

type TitleDescription struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GeneratedContent struct {
	Content string `json:"content"`
}
