package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"expirychecker/internal/food"
)

// Client is a client for the Gemini API. It only produces raw text; turning
// that text into structured records is the extract package's job.
type Client struct {
	// flash answers text-only recipe prompts, pro handles the multimodal
	// label-extraction prompt.
	flash *genai.GenerativeModel
	pro   *genai.GenerativeModel
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{
		flash: client.GenerativeModel("gemini-1.5-flash"),
		pro:   client.GenerativeModel("gemini-1.5-pro"),
	}, nil
}

// RecipeText asks the model for one recipe using the given ingredients and
// returns its raw text answer. The prompt pins down the layout the extract
// package expects; the model is not guaranteed to honor it.
func (c *Client) RecipeText(ctx context.Context, ingredients []string, cookingTime, difficulty string) (string, error) {
	prompt := fmt.Sprintf(
		"次の食材を使ってレシピを作成してください: %s。\n"+
			"調理時間は%s、難易度は%sです。\n\n"+
			"以下の形式で厳密に出力してください。各セクションは改行で区切り、箇条書きには必ず番号または'-'を使用してください：\n\n"+
			"name: [レシピ名を一行で記載]\n"+
			"cooking_time: [調理時間を「XX分」の形式で記載]\n"+
			"difficulty: [難易度を「初級」「中級」「上級」のいずれかで記載]\n"+
			"ingredients:\n"+
			"- [材料名と量をスペースで区切って記載]\n"+
			"- [材料名と量をスペースで区切って記載]\n"+
			"steps:\n"+
			"1. [調理手順を具体的に記載]\n"+
			"2. [調理手順を具体的に記載]\n"+
			"tips:\n"+
			"- [調理のコツを具体的に記載]\n"+
			"- [調理のコツを具体的に記載]\n\n"+
			"注意事項：\n"+
			"- 各セクションの開始を示すキーワード（name:, cooking_time:, difficulty:, ingredients:, steps:, tips:）は必ず記載してください\n"+
			"- 材料は必ず「-」で始まる箇条書きにしてください\n"+
			"- 手順は必ず番号付きリストにしてください\n"+
			"- コツは必ず「-」で始まる箇条書きにしてください\n"+
			"- 余分な装飾（##など）は使用しないでください",
		strings.Join(ingredients, ", "), cookingTime, difficulty)

	resp, err := c.flash.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// LabelText asks the model to read a food label from the image plus the OCR
// text and answer in the three-line 商品名/賞味期限/カテゴリ layout.
func (c *Client) LabelText(ctx context.Context, ocrText string, imageData []byte) (string, error) {
	prompt := fmt.Sprintf(
		"この画像に写っている商品とカテゴリと賞味期限の情報を抜き出してください。\n"+
			"賞味期限の表示は必ずYYYY-MM-DDの形式で出力してください。\n"+
			"カテゴリはこの中から選択してください。%s\n\n"+
			"画像から抽出されたテキスト:\n%s\n\n"+
			"上記の情報を参考にしてください。商品名などは補完してください。\n"+
			"例：ヨーグル→ヨーグルト\n\n"+
			"出力は下記の情報のみ出力してください。\n"+
			"商品名:\n"+
			"賞味期限:YYYY-MM-DD\n"+
			"カテゴリ:\n",
		strings.Join(food.Categories, ","), ocrText)

	resp, err := c.pro.GenerateContent(ctx, genai.ImageData("jpeg", imageData), genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}
	return string(text), nil
}
