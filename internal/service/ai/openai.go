package ai

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const (
	endpointResponses = "responses"
	endpointChat      = "chat/completions"
)

// OpenAIProvider talks to the OpenAI API, or any server speaking its chat
// completions dialect when name is ProviderCompatible.
type OpenAIProvider struct {
	client          openai.Client
	name            string
	model           string
	endpoint        string
	thinking        bool
	reasoningEffort string
}

func NewOpenAIProvider(apiKey, baseURL, model, endpoint string, thinking bool, reasoningEffort string) (*OpenAIProvider, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if endpoint == "" {
		endpoint = endpointResponses
	}

	return &OpenAIProvider{
		client:          openai.NewClient(opts...),
		name:            ProviderOpenAI,
		model:           model,
		endpoint:        endpoint,
		thinking:        thinking,
		reasoningEffort: reasoningEffort,
	}, nil
}

// NewCompatibleProvider targets a self-hosted or third-party server that
// implements /chat/completions only.
func NewCompatibleProvider(apiKey, baseURL, model string) (*OpenAIProvider, error) {
	p, err := NewOpenAIProvider(apiKey, baseURL, model, endpointChat, false, "")
	if err != nil {
		return nil, err
	}
	p.name = ProviderCompatible
	return p, nil
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) Test(ctx context.Context) (string, error) {
	return p.Complete(ctx, "", "Hello world")
}

func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	if p.endpoint == endpointResponses {
		return p.completeWithResponses(ctx, systemPrompt, content)
	}
	return p.completeWithChat(ctx, systemPrompt, content)
}

// isReasoningModel reports whether the model accepts reasoning_effort on the
// chat endpoint (o1, o3, o4, gpt-5).
func (p *OpenAIProvider) isReasoningModel() bool {
	model := strings.ToLower(p.model)
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

func (p *OpenAIProvider) completeWithResponses(ctx context.Context, systemPrompt, content string) (string, error) {
	var items []responses.ResponseInputItemUnionParam
	if systemPrompt != "" {
		items = append(items, responses.ResponseInputItemParamOfMessage(systemPrompt, responses.EasyInputMessageRoleSystem))
	}
	items = append(items, responses.ResponseInputItemParamOfMessage(content, responses.EasyInputMessageRoleUser))

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(p.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam(items),
		},
	}
	if p.thinking && p.reasoningEffort != "" {
		params.Reasoning = shared.ReasoningParam{
			Effort: shared.ReasoningEffort(p.reasoningEffort),
		}
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.AsMessage().Content {
			if part.Type == "output_text" {
				out.WriteString(part.Text)
			}
		}
	}
	return out.String(), nil
}

func (p *OpenAIProvider) completeWithChat(ctx context.Context, systemPrompt, content string) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	}
	if p.thinking && p.isReasoningModel() && p.reasoningEffort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(p.reasoningEffort)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
