package domain

// Advice é a resposta do serviço de texto generativo, repassada sem interpretação
type Advice struct {
	Context string         `json:"context"`
	Text    string         `json:"text"`
	Sources []AdviceSource `json:"sources"`
}

type AdviceSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}
