package openai

import (
	"fmt"

	"github.com/at-ishikawa/ogura-an/internal/inference"
)

// lookupSystemPrompt asks for a single JSON object with the keys word, meaning, tag and usage.
const lookupSystemPrompt = `以下のワードと文脈を参考に、ワードの意味を500文字以下で詳しく説明し、ワード、意味、タグ、使い方の4つの項目を含むJSONを返却してください。
返却値は必ずJSONだけにしてください。JSON以外の文章やコードブロックの記号は含めないでください。
JSONのキーは例に合わせて "word"、"meaning"、"tag"、"usage" の4つだけにしてください。
意味は硬い文体（である調）で、500文字以下で説明してください。
タグはワードが属する分野やカテゴリを1つから3つ、カンマ区切りの文字列で記載してください。
使い方は文脈をそのまま転載せず、ワードを使用した適切な例文を新しく作成してください。
（例）ワード: りんご、文脈: りんごを食べる
{
  "word": "りんご",
  "meaning": "バラ科リンゴ属の落葉高木の果実であり、赤色か緑色をした丸い形状の果物である。",
  "tag": "フルーツ,植物",
  "usage": "あの木になっている美味しそうなりんごだ。"
}`

func buildLookupUserMessage(params inference.LookupRequest) string {
	return fmt.Sprintf("ワード: %s\n文脈: %s", params.Word, params.Context)
}

func (client *Client) getRequestBody(params inference.LookupRequest) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{Role: RoleSystem, Content: lookupSystemPrompt},
			{Role: RoleUser, Content: buildLookupUserMessage(params)},
		},
	}
}
